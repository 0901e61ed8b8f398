package service

import (
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type NotificationService struct {
	notifications port.NotificationRepository
	ids           IDGenerator
	clock         Clock
	logger        *logrus.Logger
}

func NewNotificationService(notifications port.NotificationRepository, ids IDGenerator, clock Clock, logger *logrus.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		ids:           ids,
		clock:         clock,
		logger:        logger,
	}
}

// Notify stores n as a new unread notification.
func (s *NotificationService) Notify(n domain.Notification) domain.Notification {
	if n.ID == "" {
		n.ID = s.ids.NewID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.clock.Now()
	}
	n.Read = false
	s.notifications.Save(n.ID, n)

	s.logger.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"order_id":        n.OrderID,
	}).Info("notification created")

	return n
}

func (s *NotificationService) GetAll() []domain.Notification {
	return s.notifications.List()
}

func (s *NotificationService) Unread() []domain.Notification {
	var out []domain.Notification
	for _, n := range s.notifications.List() {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

func (s *NotificationService) MarkAsRead(id string) bool {
	return s.notifications.Replace(id, func(n domain.Notification) domain.Notification {
		n.Read = true
		return n
	})
}
