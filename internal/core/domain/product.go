package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID            string
	Name          string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
	Description   string
	Supplier      string
}
