package service

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type OrderService struct {
	orders port.OrderRepository
	ids    IDGenerator
	logger *logrus.Logger
}

func NewOrderService(orders port.OrderRepository, ids IDGenerator, logger *logrus.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		ids:    ids,
		logger: logger,
	}
}

func (s *OrderService) CreateOrder(o domain.Order) domain.Order {
	if o.ID == "" {
		o.ID = s.ids.NewID()
	}
	s.orders.Save(o.ID, o.Clone())

	s.logger.WithFields(logrus.Fields{
		"order_id":     o.ID,
		"supplier_id":  o.SupplierID,
		"items_count":  len(o.Items),
		"total_amount": o.TotalAmount().StringFixed(2),
	}).Debug("order created")

	return o
}

// GetOrder returns a clone; editing its items does not touch the stored order.
func (s *OrderService) GetOrder(id string) (domain.Order, bool) {
	o, ok := s.orders.FindByID(id)
	if !ok {
		return domain.Order{}, false
	}
	return o.Clone(), true
}

func (s *OrderService) GetAllOrders() []domain.Order {
	orders := s.orders.List()
	for i := range orders {
		orders[i] = orders[i].Clone()
	}
	return orders
}

func (s *OrderService) GetOrdersByStatus(status domain.OrderStatus) []domain.Order {
	var out []domain.Order
	for _, o := range s.orders.List() {
		if o.Status == status {
			out = append(out, o.Clone())
		}
	}
	return out
}

// UpdateOrderStatus accepts any transition; returns false if the order does not exist.
func (s *OrderService) UpdateOrderStatus(id string, status domain.OrderStatus) bool {
	ok := s.orders.Replace(id, func(o domain.Order) domain.Order {
		return o.WithStatus(status)
	})
	if !ok {
		s.logger.WithField("order_id", id).Debug("status update for unknown order")
		return false
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": id,
		"status":   status,
	}).Debug("order status updated")
	return true
}

// GetTotalRevenue sums every stored order, cancelled ones included.
func (s *OrderService) GetTotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.orders.List() {
		total = total.Add(o.TotalAmount())
	}
	return total
}
