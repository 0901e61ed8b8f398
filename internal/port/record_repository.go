package port

import "github.com/karkabahamza/multisales/internal/core/domain"

// RecordRepository keeps records keyed by id, remembering insertion order.
type RecordRepository[T any] interface {
	// Save inserts the record or overwrites the one stored under the same id
	Save(id string, record T)

	// FindByID returns the record stored under id, false if absent
	FindByID(id string) (T, bool)

	// Replace stores fn(current) under id, returns false without inserting if id is absent
	Replace(id string, fn func(T) T) bool

	// List returns every record in insertion order
	List() []T

	Count() int
}

type ProductRepository = RecordRepository[domain.Product]

type OrderRepository = RecordRepository[domain.Order]

type InvoiceRepository = RecordRepository[domain.Invoice]

type NotificationRepository = RecordRepository[domain.Notification]

type ReviewRepository = RecordRepository[domain.Review]

type UserRepository = RecordRepository[domain.UserProfile]
