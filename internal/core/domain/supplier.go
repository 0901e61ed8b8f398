package domain

type Supplier struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	TaxID   string
}
