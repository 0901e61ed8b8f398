package storage

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karkabahamza/multisales/internal/core/domain"
)

func adjust(productID string, delta int) domain.StockAdjustment {
	return domain.StockAdjustment{ProductID: productID, Delta: delta}
}

func TestMemoryStock_UnsetReadsZero(t *testing.T) {
	stock := NewMemoryStock()

	quantity, ok := stock.GetStock("P001")
	assert.False(t, ok)
	assert.Equal(t, 0, quantity)
}

func TestMemoryStock_AdjustStock(t *testing.T) {
	stock := NewMemoryStock()
	stock.SetStock("P001", 10)

	next, ok := stock.AdjustStock(adjust("P001", -4))
	assert.True(t, ok)
	assert.Equal(t, 6, next)

	next, ok = stock.AdjustStock(adjust("P001", -7))
	assert.False(t, ok)
	assert.Equal(t, 6, next)

	next, ok = stock.AdjustStock(adjust("P001", -6))
	assert.True(t, ok)
	assert.Equal(t, 0, next)
}

func TestMemoryStock_AdjustUnsetProduct(t *testing.T) {
	stock := NewMemoryStock()

	_, ok := stock.AdjustStock(adjust("P404", -1))
	assert.False(t, ok)

	next, ok := stock.AdjustStock(adjust("P404", 3))
	assert.True(t, ok)
	assert.Equal(t, 3, next)
}

func TestMemoryStock_Concurrent(t *testing.T) {
	initialStock := 20
	totalRequests := 50

	stock := NewMemoryStock()
	stock.SetStock("item", initialStock)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := stock.AdjustStock(adjust("item", -1)); ok {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(initialStock), successCount.Load())
	remaining, _ := stock.GetStock("item")
	assert.Equal(t, 0, remaining)
	assert.Len(t, stock.Adjustments("item"), initialStock)
}

func TestMemoryStock_ConcurrentHistoryInCommitOrder(t *testing.T) {
	stock := NewMemoryStock()
	stock.SetStock("item", 100)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			delta := -1
			if i%2 == 0 {
				delta = 2
			}
			stock.AdjustStock(adjust("item", delta))
		}(i)
	}
	wg.Wait()

	history := stock.Adjustments("item")
	require.NotEmpty(t, history)

	previous := 100
	for i, adj := range history {
		assert.Equal(t, previous+adj.Delta, adj.Quantity, "entry %d", i)
		previous = adj.Quantity
	}
	final, _ := stock.GetStock("item")
	assert.Equal(t, final, previous)
}

func TestMemoryStock_Adjustments(t *testing.T) {
	stock := NewMemoryStock()
	stock.SetStock("P001", 50)
	stock.SetStock("P002", 200)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	stock.AdjustStock(domain.StockAdjustment{ProductID: "P001", Delta: -5, Reason: "commande O001", CreatedAt: now})
	stock.AdjustStock(adjust("P002", -10))
	stock.AdjustStock(adjust("P001", 2))
	stock.AdjustStock(adjust("P001", -100))

	history := stock.Adjustments("P001")
	if assert.Len(t, history, 2) {
		assert.Equal(t, -5, history[0].Delta)
		assert.Equal(t, 45, history[0].Quantity)
		assert.Equal(t, "commande O001", history[0].Reason)
		assert.Equal(t, now, history[0].CreatedAt)
		assert.Equal(t, 47, history[1].Quantity)
	}
	assert.Empty(t, stock.Adjustments("P003"))
}
