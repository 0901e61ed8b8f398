package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karkabahamza/multisales/internal/config"
	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/core/service"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type counterIDs struct{ n int }

func (c *counterIDs) NewID() string {
	c.n++
	return fmt.Sprintf("ID-%d", c.n)
}

func newTestPlatform(t *testing.T) (*Platform, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	cfg := config.Config{
		VATRate:         decimal.RequireFromString("0.20"),
		PaymentTermDays: 30,
		CurrencySymbol:  "€",
	}
	p := New(cfg, logger, fixedClock{now: testNow}, &counterIDs{})

	p.AddProduct(domain.Product{ID: "P001", Name: "Chaise de bureau ergonomique", Price: decimal.RequireFromString("150.00"), StockQuantity: 50})
	p.AddProduct(domain.Product{ID: "P002", Name: "Draps hôteliers 100% coton", Price: decimal.RequireFromString("45.00"), StockQuantity: 200})
	return p, hook
}

func demoOrder() domain.Order {
	return domain.Order{
		ID:         "O001",
		SupplierID: "S001",
		Items: []domain.OrderItem{
			{ProductID: "P001", Quantity: 5, UnitPrice: decimal.RequireFromString("150.00")},
			{ProductID: "P002", Quantity: 10, UnitPrice: decimal.RequireFromString("45.00")},
		},
		Status:    domain.OrderStatusPending,
		OrderDate: testNow,
	}
}

func TestAddProduct_SeedsStock(t *testing.T) {
	p, _ := newTestPlatform(t)

	assert.Equal(t, 2, p.Catalog.GetProductCount())
	assert.Equal(t, 50, p.Inventory.GetStock("P001"))
	assert.Equal(t, 200, p.Inventory.GetStock("P002"))
}

func TestPlaceOrder_ReservesStockAndNotifies(t *testing.T) {
	p, _ := newTestPlatform(t)

	order, err := p.PlaceOrder(demoOrder())
	require.NoError(t, err)

	assert.Equal(t, 45, p.Inventory.GetStock("P001"))
	assert.Equal(t, 190, p.Inventory.GetStock("P002"))

	history := p.Inventory.Adjustments("P001")
	require.Len(t, history, 1)
	assert.Equal(t, "commande O001", history[0].Reason)

	notifications := p.Notifications.Unread()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Nouvelle commande", notifications[0].Title)
	assert.Equal(t, "Commande O001 créée (2 article(s))", notifications[0].Body)
	assert.Equal(t, order.ID, notifications[0].OrderID)
}

func TestPlaceOrder_RollsBackOnShortage(t *testing.T) {
	p, hook := newTestPlatform(t)

	order := demoOrder()
	order.Items[1].Quantity = 500

	_, err := p.PlaceOrder(order)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInsufficientStock))

	assert.Equal(t, 50, p.Inventory.GetStock("P001"))
	assert.Equal(t, 200, p.Inventory.GetStock("P002"))
	assert.Empty(t, p.Notifications.GetAll())

	_, stored := p.Orders.GetOrder("O001")
	assert.True(t, stored)
	assert.Equal(t, "rolled back stock reservation", hook.LastEntry().Message)
}

func TestPlaceOrder_SkipsInvalidItems(t *testing.T) {
	p, _ := newTestPlatform(t)

	order := demoOrder()
	order.Items = append(order.Items,
		domain.OrderItem{ProductID: "", Quantity: 3},
		domain.OrderItem{ProductID: "P001", Quantity: 0},
	)

	_, err := p.PlaceOrder(order)
	require.NoError(t, err)
	assert.Equal(t, 45, p.Inventory.GetStock("P001"))
}

func TestPlaceOrder_NegativeQuantityReservesAbsoluteValue(t *testing.T) {
	p, _ := newTestPlatform(t)

	order := demoOrder()
	order.Items = []domain.OrderItem{{ProductID: "P001", Quantity: -3, UnitPrice: decimal.RequireFromString("150.00")}}

	_, err := p.PlaceOrder(order)
	require.NoError(t, err)
	assert.Equal(t, 47, p.Inventory.GetStock("P001"))

	history := p.Inventory.Adjustments("P001")
	require.Len(t, history, 1)
	assert.Equal(t, -3, history[0].Delta)
}

func TestPlaceOrder_NegativeQuantityReleasedOnShortage(t *testing.T) {
	p, _ := newTestPlatform(t)

	order := demoOrder()
	order.Items = []domain.OrderItem{
		{ProductID: "P001", Quantity: -4},
		{ProductID: "P002", Quantity: 500},
	}

	_, err := p.PlaceOrder(order)
	require.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Equal(t, 50, p.Inventory.GetStock("P001"))
	assert.Equal(t, 200, p.Inventory.GetStock("P002"))
}

func TestPlaceOrder_AssignsUUIDWithDefaultGenerator(t *testing.T) {
	logger, _ := test.NewNullLogger()
	p := New(config.Config{VATRate: decimal.Zero}, logger, SystemClock{}, UUIDGenerator{})

	order, err := p.PlaceOrder(domain.Order{SupplierID: "S001", Status: domain.OrderStatusPending})
	require.NoError(t, err)

	_, err = uuid.Parse(order.ID)
	assert.NoError(t, err)
}

func TestNew_WiresReviewsAndUsers(t *testing.T) {
	p, _ := newTestPlatform(t)

	p.Reviews.AddReview(domain.Review{ProductID: "P001", Rating: 4})
	assert.Len(t, p.Reviews.GetReviewsForProduct("P001"), 1)

	profile := p.Users.CreateProfile("uid-1", "achat@hotel.fr", "", "")
	assert.Equal(t, testNow, profile.CreatedAt)
	assert.True(t, profile.HasRole(domain.RoleCustomer))
}

func TestIssueInvoice(t *testing.T) {
	p, _ := newTestPlatform(t)
	order, err := p.PlaceOrder(demoOrder())
	require.NoError(t, err)

	inv := p.IssueInvoice("INV001", order)

	assert.Equal(t, domain.InvoiceStatusIssued, inv.Status)
	assert.Equal(t, "1200.00", inv.Amount.StringFixed(2))
	assert.Equal(t, "240.00", inv.TaxAmount.StringFixed(2))
	assert.True(t, inv.DiscountAmount.IsZero())
	assert.Equal(t, "1440.00", inv.TotalAmount().StringFixed(2))
	assert.Equal(t, testNow, inv.IssueDate)
	assert.Equal(t, testNow.AddDate(0, 0, 30), inv.DueDate)

	assert.Equal(t, "1440.00", p.Invoices.GetTotalOutstanding().StringFixed(2))
	require.True(t, p.Invoices.MarkAsPaid("INV001"))
	assert.True(t, p.Invoices.GetTotalOutstanding().IsZero())
}
