package domain

// Review is a buyer's rating of a catalog product. Comment is optional.
type Review struct {
	ID        string
	ProductID string
	Rating    int
	Comment   string
}
