package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

func (s InvoiceStatus) String() string {
	return string(s)
}

// Outstanding reports whether an invoice with this status still awaits payment.
func (s InvoiceStatus) Outstanding() bool {
	return s == InvoiceStatusIssued || s == InvoiceStatusOverdue
}

type Invoice struct {
	ID             string
	OrderID        string
	IssueDate      time.Time
	DueDate        time.Time
	Amount         decimal.Decimal
	Status         InvoiceStatus
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Notes          string
}

// TotalAmount is amount + tax - discount.
func (i Invoice) TotalAmount() decimal.Decimal {
	return i.Amount.Add(i.TaxAmount).Sub(i.DiscountAmount)
}

// IsOverdue only holds for issued invoices past their due date. An invoice
// already flagged overdue is not re-evaluated.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusIssued && now.After(i.DueDate)
}

func (i Invoice) WithStatus(status InvoiceStatus) Invoice {
	next := i
	next.Status = status
	return next
}
