package customer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
)

var ErrNameRequired = errors.New("customer name is required")

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Service owns the customer list. Customers are only ever appended; duplicate
// names and phones are allowed.
type Service struct {
	mu        sync.Mutex
	store     snapshot.Store
	ids       ids.Generator
	customers []Customer
}

func NewService(store snapshot.Store, gen ids.Generator) *Service {
	return &Service{store: store, ids: gen}
}

func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := snapshot.Read[Customer](ctx, s.store, snapshot.KeyCustomers)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			s.customers = nil
			return nil
		}

		return err
	}

	s.customers = customers

	return nil
}

// AddCustomer records a new customer and returns it so callers can link it
// to a sale.
func (s *Service) AddCustomer(ctx context.Context, name, phone string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := Customer{
		ID:    s.ids.NewID(),
		Name:  name,
		Phone: phone,
	}

	next := make([]Customer, 0, len(s.customers)+1)
	next = append(next, s.customers...)
	next = append(next, c)

	s.customers = next

	if err := snapshot.Write(ctx, s.store, snapshot.KeyCustomers, next); err != nil {
		return nil, fmt.Errorf("persisting customers: %w", err)
	}

	return &c, nil
}

func (s *Service) List() []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.customers)
}

func (s *Service) Get(id string) (Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}

	return Customer{}, false
}
