package domain

import (
	"maps"
	"time"
)

const RoleCustomer = "customer"

type UserProfile struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
	CreatedAt   time.Time
	Roles       map[string]bool
}

// Clone returns a copy that shares no roles map with u.
func (u UserProfile) Clone() UserProfile {
	next := u
	next.Roles = maps.Clone(u.Roles)
	return next
}

func (u UserProfile) HasRole(role string) bool {
	return u.Roles[role]
}
