package service

import (
	"github.com/sirupsen/logrus"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type ReviewService struct {
	reviews port.ReviewRepository
	ids     IDGenerator
	logger  *logrus.Logger
}

func NewReviewService(reviews port.ReviewRepository, ids IDGenerator, logger *logrus.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		ids:     ids,
		logger:  logger,
	}
}

func (s *ReviewService) AddReview(r domain.Review) domain.Review {
	if r.ID == "" {
		r.ID = s.ids.NewID()
	}
	s.reviews.Save(r.ID, r)

	s.logger.WithFields(logrus.Fields{
		"review_id":  r.ID,
		"product_id": r.ProductID,
		"rating":     r.Rating,
	}).Debug("review added")

	return r
}

// GetReviewsForProduct returns the product's reviews in insertion order.
func (s *ReviewService) GetReviewsForProduct(productID string) []domain.Review {
	var out []domain.Review
	for _, r := range s.reviews.List() {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}
