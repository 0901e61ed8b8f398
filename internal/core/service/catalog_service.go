package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"github.com/karkabahamza/multisales/internal/core/domain"
	"github.com/karkabahamza/multisales/internal/port"
)

type CatalogService struct {
	products port.ProductRepository
	ids      IDGenerator
	logger   *logrus.Logger
}

func NewCatalogService(products port.ProductRepository, ids IDGenerator, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		ids:      ids,
		logger:   logger,
	}
}

func (s *CatalogService) AddProduct(p domain.Product) domain.Product {
	if p.ID == "" {
		p.ID = s.ids.NewID()
	}
	s.products.Save(p.ID, p)

	s.logger.WithFields(logrus.Fields{
		"product_id": p.ID,
		"category":   p.Category,
	}).Debug("product added to catalog")

	return p
}

// UpdateProduct changes the name and/or price of a stored product; nil
// leaves the field as is. Returns false when id is absent.
func (s *CatalogService) UpdateProduct(id string, name *string, price *decimal.Decimal) bool {
	updated := s.products.Replace(id, func(p domain.Product) domain.Product {
		if name != nil {
			p.Name = *name
		}
		if price != nil {
			p.Price = *price
		}
		return p
	})
	if updated {
		s.logger.WithField("product_id", id).Debug("product updated")
	}
	return updated
}

func (s *CatalogService) GetProduct(id string) (domain.Product, bool) {
	return s.products.FindByID(id)
}

func (s *CatalogService) GetAllProducts() []domain.Product {
	return s.products.List()
}

// GetProductsByCategory matches the category exactly, case included.
func (s *CatalogService) GetProductsByCategory(category string) []domain.Product {
	var out []domain.Product
	for _, p := range s.products.List() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts returns products whose name contains query, ignoring case.
func (s *CatalogService) SearchProducts(query string) []domain.Product {
	fold := cases.Fold()
	needle := fold.String(query)

	var out []domain.Product
	for _, p := range s.products.List() {
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) GetProductCount() int {
	return s.products.Count()
}
