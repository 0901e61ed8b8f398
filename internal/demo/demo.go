// Package demo prints the scripted MULTISALES walkthrough.
package demo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karkabahamza/multisales/internal/app"
	"github.com/karkabahamza/multisales/internal/core/domain"
)

const repositoryURL = "https://github.com/KARKABAhamza/multisales"

// Run drives the platform through the walkthrough and writes the narrative to w.
func Run(w io.Writer, p *app.Platform) error {
	out := bufio.NewWriter(w)
	f := formatter{symbol: p.Config().CurrencySymbol}
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "MULTISALES - Plateforme B2B")
	fmt.Fprintln(out, "Sourcing et approvisionnement multi-catégorie")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Catalogue centralisé ---")
	products := catalogFixtures()
	ids := make([]string, 0, len(products))
	for _, product := range products {
		p.AddProduct(product)
		ids = append(ids, product.ID)
	}
	fmt.Fprintf(out, "Produits ajoutés au catalogue: %d\n", p.Catalog.GetProductCount())
	for _, product := range p.Catalog.GetAllProducts() {
		fmt.Fprintf(out, "  - %s\n", f.product(product))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Fournisseurs ---")
	supplier := supplierFixture()
	fmt.Fprintf(out, "Fournisseur: %s\n", f.supplier(supplier))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Gestion de commandes ---")
	order, err := p.PlaceOrder(domain.Order{
		ID:         "O001",
		SupplierID: supplier.ID,
		Items: []domain.OrderItem{
			{ProductID: "P001", Quantity: 5, UnitPrice: decimal.RequireFromString("150.00")},
			{ProductID: "P002", Quantity: 10, UnitPrice: decimal.RequireFromString("45.00")},
		},
		Status:    domain.OrderStatusPending,
		OrderDate: p.Now(),
	})
	if err != nil {
		return fmt.Errorf("place order: %w", err)
	}
	fmt.Fprintf(out, "Commande créée: %s\n", f.order(order))
	fmt.Fprintln(out, "Détails des articles:")
	for _, item := range order.Items {
		name := "Unknown"
		if product, ok := p.Catalog.GetProduct(item.ProductID); ok {
			name = product.Name
		}
		fmt.Fprintf(out, "  - %s: %d x %s = %s\n", name, item.Quantity, f.money(item.UnitPrice), f.money(item.TotalPrice()))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Gestion de stock ---")
	fmt.Fprintln(out, "Stock mis à jour après commande:")
	for _, product := range products {
		fmt.Fprintf(out, "  - %s: %d unités\n", product.Name, p.Inventory.GetStock(product.ID))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Facturation ---")
	invoice := p.IssueInvoice("INV001", order)
	fmt.Fprintf(out, "Facture générée: %s\n", f.invoice(invoice))
	fmt.Fprintf(out, "Montant HT: %s\n", f.money(invoice.Amount))
	fmt.Fprintf(out, "TVA (%s%%): %s\n", p.Config().VATRate.Mul(decimal.NewFromInt(100)).String(), f.money(invoice.TaxAmount))
	fmt.Fprintf(out, "Total TTC: %s\n", f.money(invoice.TotalAmount()))
	fmt.Fprintf(out, "Échéance: %s\n", frenchDay(invoice.DueDate))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Statistiques de la plateforme ---")
	fmt.Fprintf(out, "Produits au catalogue: %d\n", p.Catalog.GetProductCount())
	fmt.Fprintf(out, "Commandes en cours: %d\n", len(p.Orders.GetOrdersByStatus(domain.OrderStatusPending)))
	fmt.Fprintf(out, "Chiffre d'affaires total: %s\n", f.money(p.Orders.GetTotalRevenue()))
	fmt.Fprintf(out, "Factures en attente: %s\n", f.money(p.Invoices.GetTotalOutstanding()))
	fmt.Fprintf(out, "Stock total: %d unités\n", p.Inventory.TotalStock(ids...))
	fmt.Fprintf(out, "Notifications non lues: %d\n", len(p.Notifications.Unread()))
	fmt.Fprintln(out)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Plateforme opérationnelle")
	fmt.Fprintf(out, "Repository: %s\n", repositoryURL)
	fmt.Fprintln(out, rule)

	return out.Flush()
}
