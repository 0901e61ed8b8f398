package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// TotalPrice is quantity times unit price. Negative inputs are not rejected.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID           string
	SupplierID   string
	Items        []OrderItem
	Status       OrderStatus
	OrderDate    time.Time
	DeliveryDate *time.Time
	Notes        string
}

func (o Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// Clone returns a copy that shares no items or delivery date with o.
func (o Order) Clone() Order {
	next := o
	if o.Items != nil {
		next.Items = append([]OrderItem(nil), o.Items...)
	}
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		next.DeliveryDate = &d
	}
	return next
}

// WithStatus returns a clone of the order with only the status changed.
func (o Order) WithStatus(status OrderStatus) Order {
	next := o.Clone()
	next.Status = status
	return next
}
