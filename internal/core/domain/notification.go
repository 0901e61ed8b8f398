package domain

import "time"

type Notification struct {
	ID        string
	Title     string
	Body      string
	OrderID   string
	CreatedAt time.Time
	Read      bool
}
