package domain

import "time"

// StockAdjustment records one committed change to a product's stock counter.
type StockAdjustment struct {
	ProductID string
	Delta     int
	Quantity  int // stock after the change
	Reason    string
	CreatedAt time.Time
}
