package service

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type InvoiceService struct {
	invoices port.InvoiceRepository
	ids      IDGenerator
	clock    Clock
	logger   *logrus.Logger
}

func NewInvoiceService(invoices port.InvoiceRepository, ids IDGenerator, clock Clock, logger *logrus.Logger) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

func (s *InvoiceService) GenerateInvoice(inv domain.Invoice) domain.Invoice {
	if inv.ID == "" {
		inv.ID = s.ids.NewID()
	}
	s.invoices.Save(inv.ID, inv)

	s.logger.WithFields(logrus.Fields{
		"invoice_id":   inv.ID,
		"order_id":     inv.OrderID,
		"total_amount": inv.TotalAmount().StringFixed(2),
	}).Debug("invoice generated")

	return inv
}

func (s *InvoiceService) GetInvoice(id string) (domain.Invoice, bool) {
	return s.invoices.FindByID(id)
}

func (s *InvoiceService) GetAllInvoices() []domain.Invoice {
	return s.invoices.List()
}

func (s *InvoiceService) GetInvoicesByStatus(status domain.InvoiceStatus) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range s.invoices.List() {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}

// MarkAsPaid sets the status to paid whatever it was before.
func (s *InvoiceService) MarkAsPaid(id string) bool {
	ok := s.invoices.Replace(id, func(inv domain.Invoice) domain.Invoice {
		return inv.WithStatus(domain.InvoiceStatusPaid)
	})
	if ok {
		s.logger.WithField("invoice_id", id).Debug("invoice marked as paid")
	}
	return ok
}

// GetTotalOutstanding sums issued and overdue invoices.
func (s *InvoiceService) GetTotalOutstanding() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range s.invoices.List() {
		if inv.Status.Outstanding() {
			total = total.Add(inv.TotalAmount())
		}
	}
	return total
}

func (s *InvoiceService) GetOverdueInvoices() []domain.Invoice {
	now := s.clock.Now()

	var out []domain.Invoice
	for _, inv := range s.invoices.List() {
		if inv.IsOverdue(now) {
			out = append(out, inv)
		}
	}
	return out
}
