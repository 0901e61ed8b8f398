package port

import "github.com/karkabahamza/multisales/internal/core/domain"

type StockRepository interface {
	// SetStock overwrites the counter for a product
	SetStock(productID string, quantity int)

	// GetStock returns the counter, false if it was never set
	GetStock(productID string) (int, bool)

	// AdjustStock atomically applies adjustment.Delta, stamps the resulting
	// quantity and appends the adjustment to the product's history.
	// Returns false, leaving counter and history untouched, if the counter
	// would go negative. The returned quantity is the counter after the call.
	AdjustStock(adjustment domain.StockAdjustment) (int, bool)

	// Adjustments returns the product's history, oldest first
	Adjustments(productID string) []domain.StockAdjustment
}
