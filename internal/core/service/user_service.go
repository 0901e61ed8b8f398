package service

import (
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type UserService struct {
	users  port.UserRepository
	clock  Clock
	logger *logrus.Logger
}

func NewUserService(users port.UserRepository, clock Clock, logger *logrus.Logger) *UserService {
	return &UserService{
		users:  users,
		clock:  clock,
		logger: logger,
	}
}

// CreateProfile writes the profile of a newly registered account under its
// uid. Contact fields and the creation time are overwritten; the customer
// role is merged into any roles the stored profile already carries.
func (s *UserService) CreateProfile(uid, email, displayName, photoURL string) domain.UserProfile {
	profile := domain.UserProfile{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		CreatedAt:   s.clock.Now(),
		Roles:       map[string]bool{domain.RoleCustomer: true},
	}

	if existing, ok := s.users.FindByID(uid); ok {
		for role, granted := range existing.Roles {
			if role != domain.RoleCustomer {
				profile.Roles[role] = granted
			}
		}
	}
	s.users.Save(uid, profile.Clone())

	s.logger.WithField("uid", uid).Info("user profile created")

	return profile
}

func (s *UserService) GetProfile(uid string) (domain.UserProfile, bool) {
	u, ok := s.users.FindByID(uid)
	if !ok {
		return domain.UserProfile{}, false
	}
	return u.Clone(), true
}
