// Package cart holds the in-progress order at the point of sale.
package cart

import (
	"errors"
	"slices"
	"sync"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

var ErrOutOfStock = errors.New("product is out of stock")

// Line is one product in the cart. Name and price are captured when the
// product is first added.
type Line struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is safe for concurrent use. The zero value is an empty cart.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart, bumping its line if it is already
// there. Products with no stock left are refused.
func (c *Cart) Add(p catalog.Product) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}

	c.lines = append(c.lines, Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})

	return nil
}

// SetQuantity overwrites the quantity of a line. A quantity of zero or less
// removes it. Unknown products are ignored.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
		return
	}

	c.lines[i].Quantity = quantity
}

func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.lines)
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}

	return total
}

// Items converts the cart into sale line items.
func (c *Cart) Items() []sale.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil
	}

	items := make([]sale.LineItem, len(c.lines))
	for i, l := range c.lines {
		items[i] = sale.LineItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		}
	}

	return items
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ProductID == productID })
}
