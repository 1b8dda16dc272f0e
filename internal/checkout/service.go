// Package checkout turns a cart into a recorded sale.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MrJamesThe3rd/gelato/internal/cart"
	"github.com/MrJamesThe3rd/gelato/internal/customer"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

var ErrEmptyCart = errors.New("cart is empty")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=checkout
type Customers interface {
	AddCustomer(ctx context.Context, name, phone string) (*customer.Customer, error)
}

type Sales interface {
	CreateSale(ctx context.Context, params sale.CreateParams) (*sale.Sale, error)
}

type Request struct {
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Note          string
}

// Service runs one checkout at a time.
type Service struct {
	mu        sync.Mutex
	customers Customers
	sales     Sales
}

func NewService(customers Customers, sales Sales) *Service {
	return &Service{customers: customers, sales: sales}
}

// Checkout records the contents of c as a sale. A customer is created first
// when req names one. The cart is cleared once the sale is recorded.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, req Request) (*sale.Sale, error) {
	method, err := sale.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Read under the lock so a concurrent checkout of the same cart sees it
	// cleared.
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var customerID string

	if name := strings.TrimSpace(req.CustomerName); name != "" {
		cust, err := s.customers.AddCustomer(ctx, name, strings.TrimSpace(req.CustomerPhone))
		if err != nil {
			return nil, fmt.Errorf("creating customer: %w", err)
		}

		customerID = cust.ID
	}

	recorded, err := s.sales.CreateSale(ctx, sale.CreateParams{
		Items:         items,
		CustomerID:    customerID,
		PaymentMethod: method,
		Note:          strings.TrimSpace(req.Note),
	})
	if err != nil {
		return nil, fmt.Errorf("creating sale: %w", err)
	}

	c.Clear()

	return recorded, nil
}
