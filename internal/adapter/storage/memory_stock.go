package storage

import (
	"sync"

	"github.com/karkabahamza/multisales/internal/core/domain"
)

// MemoryStock holds per-product stock counters. A counter that was never set
// reads as zero.
type MemoryStock struct {
	mu          sync.RWMutex
	stock       map[string]int
	adjustments map[string][]domain.StockAdjustment
}

func NewMemoryStock() *MemoryStock {
	return &MemoryStock{
		stock:       make(map[string]int),
		adjustments: make(map[string][]domain.StockAdjustment),
	}
}

func (m *MemoryStock) SetStock(productID string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[productID] = quantity
}

func (m *MemoryStock) GetStock(productID string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quantity, ok := m.stock[productID]
	return quantity, ok
}

// AdjustStock checks, applies and records the delta under one lock so
// concurrent callers can never drive the counter below zero and the history
// stays in commit order.
func (m *MemoryStock) AdjustStock(adjustment domain.StockAdjustment) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := adjustment.ProductID
	current := m.stock[id]
	next := current + adjustment.Delta
	if next < 0 {
		return current, false
	}

	m.stock[id] = next
	adjustment.Quantity = next
	m.adjustments[id] = append(m.adjustments[id], adjustment)
	return next, true
}

func (m *MemoryStock) Adjustments(productID string) []domain.StockAdjustment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.StockAdjustment(nil), m.adjustments[productID]...)
}
