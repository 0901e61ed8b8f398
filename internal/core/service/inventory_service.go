package service

import (
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type InventoryService struct {
	stock  port.StockRepository
	clock  Clock
	logger *logrus.Logger
}

func NewInventoryService(stock port.StockRepository, clock Clock, logger *logrus.Logger) *InventoryService {
	return &InventoryService{
		stock:  stock,
		clock:  clock,
		logger: logger,
	}
}

func (s *InventoryService) InitializeStock(productID string, quantity int) {
	s.stock.SetStock(productID, quantity)
}

// GetStock returns 0 for products that were never initialized.
func (s *InventoryService) GetStock(productID string) int {
	quantity, _ := s.stock.GetStock(productID)
	return quantity
}

// UpdateStock applies a signed delta. A change that would make stock
// negative is rejected and logged, and the counter keeps its value.
func (s *InventoryService) UpdateStock(productID string, delta int) bool {
	return s.AdjustStock(productID, delta, "")
}

// AdjustStock is UpdateStock with a reason kept in the adjustment history.
func (s *InventoryService) AdjustStock(productID string, delta int, reason string) bool {
	quantity, ok := s.stock.AdjustStock(domain.StockAdjustment{
		ProductID: productID,
		Delta:     delta,
		Reason:    reason,
		CreatedAt: s.clock.Now(),
	})
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"product_id": productID,
			"stock":      quantity,
			"delta":      delta,
		}).Warnf("Erreur: Stock insuffisant pour le produit %s", productID)
		return false
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": productID,
		"stock":      quantity,
		"delta":      delta,
	}).Debug("stock updated")
	return true
}

func (s *InventoryService) IsInStock(productID string, required int) bool {
	return s.GetStock(productID) >= required
}

func (s *InventoryService) TotalStock(productIDs ...string) int {
	total := 0
	for _, id := range productIDs {
		total += s.GetStock(id)
	}
	return total
}

func (s *InventoryService) Adjustments(productID string) []domain.StockAdjustment {
	return s.stock.Adjustments(productID)
}
