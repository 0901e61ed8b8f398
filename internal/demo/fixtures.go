package demo

import (
	"github.com/shopspring/decimal"

	"github.com/karkabahamza/multisales/internal/core/domain"
)

func catalogFixtures() []domain.Product {
	return []domain.Product{
		{
			ID:            "P001",
			Name:          "Chaise de bureau ergonomique",
			Category:      "Mobilier de bureau",
			Price:         decimal.RequireFromString("150.00"),
			StockQuantity: 50,
			Description:   "Chaise ergonomique avec support lombaire",
		},
		{
			ID:            "P002",
			Name:          "Draps hôteliers 100% coton",
			Category:      "Équipements hôteliers",
			Price:         decimal.RequireFromString("45.00"),
			StockQuantity: 200,
			Description:   "Draps de qualité supérieure",
		},
		{
			ID:            "P003",
			Name:          "Gants de protection industriels",
			Category:      "Consommables industriels",
			Price:         decimal.RequireFromString("12.50"),
			StockQuantity: 500,
			Description:   "Gants résistants aux produits chimiques",
		},
	}
}

func supplierFixture() domain.Supplier {
	return domain.Supplier{
		ID:      "S001",
		Name:    "Industrial Supply Co.",
		Email:   "contact@industrialsupply.com",
		Phone:   "+33 1 23 45 67 89",
		Address: "123 Rue de l'Industrie, Paris",
	}
}
