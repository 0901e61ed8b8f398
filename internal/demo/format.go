package demo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/karkabahamza/multisales/internal/core/domain"
)

const (
	isoDate    = "2006-01-02"
	frenchDate = "02/01/2006"
)

type formatter struct {
	symbol string
}

func (f formatter) money(d decimal.Decimal) string {
	return f.symbol + d.StringFixed(2)
}

func (f formatter) product(p domain.Product) string {
	return fmt.Sprintf("%s (%s): %s - Stock: %d", p.Name, p.Category, f.money(p.Price), p.StockQuantity)
}

func (f formatter) supplier(s domain.Supplier) string {
	return fmt.Sprintf("%s (%s, %s)", s.Name, s.Email, s.Phone)
}

func (f formatter) order(o domain.Order) string {
	return fmt.Sprintf("Order %s: %d items, Total: %s, Status: %s", o.ID, len(o.Items), f.money(o.TotalAmount()), o.Status)
}

func (f formatter) invoice(inv domain.Invoice) string {
	return fmt.Sprintf("Invoice %s: %s, Status: %s, Due: %s", inv.ID, f.money(inv.Amount), inv.Status, inv.DueDate.Format(isoDate))
}

func frenchDay(t time.Time) string {
	return t.Format(frenchDate)
}
