package service

import (
	"errors"
	"time"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type Clock interface {
	Now() time.Time
}

// IDGenerator supplies ids for records saved without one.
type IDGenerator interface {
	NewID() string
}
