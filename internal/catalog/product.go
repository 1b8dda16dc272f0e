package catalog

import "errors"

var ErrNameRequired = errors.New("product name is required")

// Product is a sellable item with its current price and stock on hand.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// StockLine is a quantity of a product leaving the shelf.
type StockLine struct {
	ProductID string
	Quantity  int
}

// Seed is the catalog a shop starts with when nothing has been persisted.
var Seed = []AddParams{
	{Name: "Vanilla", Price: 1.50, Stock: 100},
	{Name: "Chocolate", Price: 1.70, Stock: 80},
	{Name: "Strawberry", Price: 1.60, Stock: 60},
}
