package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/adapter/storage"
	"github.com/karkabahamza/multisales/internal/config"
	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/core/service"
)

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Platform owns one instance of every service. The services never call each
// other; cross-service workflows live here.
type Platform struct {
	Catalog       *service.CatalogService
	Inventory     *service.InventoryService
	Orders        *service.OrderService
	Invoices      *service.InvoiceService
	Notifications *service.NotificationService
	Reviews       *service.ReviewService
	Users         *service.UserService

	cfg    config.Config
	clock  service.Clock
	logger *logrus.Logger
}

func New(cfg config.Config, logger *logrus.Logger, clock service.Clock, ids service.IDGenerator) *Platform {
	return &Platform{
		Catalog:       service.NewCatalogService(storage.NewMemoryStore[domain.Product](), ids, logger),
		Inventory:     service.NewInventoryService(storage.NewMemoryStock(), clock, logger),
		Orders:        service.NewOrderService(storage.NewMemoryStore[domain.Order](), ids, logger),
		Invoices:      service.NewInvoiceService(storage.NewMemoryStore[domain.Invoice](), ids, clock, logger),
		Notifications: service.NewNotificationService(storage.NewMemoryStore[domain.Notification](), ids, clock, logger),
		Reviews:       service.NewReviewService(storage.NewMemoryStore[domain.Review](), ids, logger),
		Users:         service.NewUserService(storage.NewMemoryStore[domain.UserProfile](), clock, logger),
		cfg:           cfg,
		clock:         clock,
		logger:        logger,
	}
}

// AddProduct registers p in the catalog and seeds its stock counter.
func (p *Platform) AddProduct(product domain.Product) domain.Product {
	product = p.Catalog.AddProduct(product)
	p.Inventory.InitializeStock(product.ID, product.StockQuantity)
	return product
}

// PlaceOrder stores the order, then reserves stock for each of its items.
// Items without a product or with a zero quantity are skipped. A negative
// quantity reserves its absolute value. If any item cannot be reserved,
// earlier reservations are released and ErrInsufficientStock is returned;
// the order itself stays stored.
func (p *Platform) PlaceOrder(order domain.Order) (domain.Order, error) {
	order = p.Orders.CreateOrder(order)
	reason := "commande " + order.ID

	var reserved []domain.OrderItem
	for _, item := range order.Items {
		if item.ProductID == "" || item.Quantity == 0 {
			p.logger.WithFields(logrus.Fields{
				"order_id":   order.ID,
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			}).Warn("skipping invalid order item")
			continue
		}

		if !p.Inventory.AdjustStock(item.ProductID, -reservedQuantity(item), reason) {
			p.releaseStock(order.ID, reserved)
			return order, fmt.Errorf("order %s, product %s: %w", order.ID, item.ProductID, service.ErrInsufficientStock)
		}
		reserved = append(reserved, item)
	}

	p.Notifications.Notify(domain.Notification{
		Title:   "Nouvelle commande",
		Body:    fmt.Sprintf("Commande %s créée (%d article(s))", order.ID, len(order.Items)),
		OrderID: order.ID,
	})

	p.logger.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"items_count": len(order.Items),
	}).Info("order placed, stock updated")

	return order, nil
}

func (p *Platform) releaseStock(orderID string, items []domain.OrderItem) {
	reason := "annulation commande " + orderID
	for _, item := range items {
		if !p.Inventory.AdjustStock(item.ProductID, reservedQuantity(item), reason) {
			p.logger.WithFields(logrus.Fields{
				"order_id":   orderID,
				"product_id": item.ProductID,
			}).Error("CRITICAL stock release failed")
		}
	}
	p.logger.WithField("order_id", orderID).Warn("rolled back stock reservation")
}

func reservedQuantity(item domain.OrderItem) int {
	if item.Quantity < 0 {
		return -item.Quantity
	}
	return item.Quantity
}

// IssueInvoice bills the order total with the configured TVA rate and
// payment term. The invoice is stored with status issued.
func (p *Platform) IssueInvoice(invoiceID string, order domain.Order) domain.Invoice {
	now := p.clock.Now()
	amount := order.TotalAmount()

	return p.Invoices.GenerateInvoice(domain.Invoice{
		ID:        invoiceID,
		OrderID:   order.ID,
		IssueDate: now,
		DueDate:   now.AddDate(0, 0, p.cfg.PaymentTermDays),
		Amount:    amount,
		Status:    domain.InvoiceStatusIssued,
		TaxAmount: amount.Mul(p.cfg.VATRate).Round(2),
	})
}

func (p *Platform) Now() time.Time {
	return p.clock.Now()
}

func (p *Platform) Config() config.Config {
	return p.cfg
}
