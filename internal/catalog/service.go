package catalog

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

// Service owns the product collection. Every mutation replaces the
// collection and persists it under snapshot.KeyProducts.
type Service struct {
	mu       sync.Mutex
	store    snapshot.Store
	ids      ids.Generator
	products []Product
}

func NewService(store snapshot.Store, gen ids.Generator) *Service {
	return &Service{store: store, ids: gen}
}

type AddParams struct {
	Name  string
	Price float64
	Stock int
}

// UpdateParams carries the fields to overwrite; nil fields are left alone.
type UpdateParams struct {
	Name  *string
	Price *float64
	Stock *int
}

// Load reads the persisted catalog. When none exists the seed catalog is
// created and persisted.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := snapshot.Read[Product](ctx, s.store, snapshot.KeyProducts)
	if err == nil {
		s.products = products
		return nil
	}

	if !errors.Is(err, snapshot.ErrNotFound) {
		return err
	}

	seeded := make([]Product, 0, len(Seed))
	for _, p := range Seed {
		seeded = append(seeded, s.newProduct(p))
	}

	return s.replace(ctx, seeded)
}

func (s *Service) AddProduct(ctx context.Context, params AddParams) (*Product, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.newProduct(params)

	next := make([]Product, 0, len(s.products)+1)
	next = append(next, s.products...)
	next = append(next, p)

	if err := s.replace(ctx, next); err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateProduct merges params into the product with the given id. Unknown ids
// are ignored.
func (s *Service) UpdateProduct(ctx context.Context, id string, params UpdateParams) error {
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := slices.Clone(s.products)
	p := &next[idx]

	if params.Name != nil {
		p.Name = *params.Name
	}

	if params.Price != nil {
		p.Price = *params.Price
	}

	if params.Stock != nil {
		p.Stock = *params.Stock
	}

	return s.replace(ctx, next)
}

// DeleteProduct removes the product with the given id. Unknown ids are
// ignored.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(s.products), idx, idx+1)

	return s.replace(ctx, next)
}

// ApplySaleDecrement takes sold quantities off the shelf. Stock is clamped at
// zero, so selling more than is on hand is allowed. Lines for products that
// are not in the catalog are ignored.
func (s *Service) ApplySaleDecrement(ctx context.Context, lines []StockLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.products)
	changed := false

	for _, line := range lines {
		for i := range next {
			if next[i].ID != line.ProductID {
				continue
			}

			next[i].Stock = max(0, next[i].Stock-line.Quantity)
			changed = true
		}
	}

	if !changed {
		return nil
	}

	return s.replace(ctx, next)
}

// List returns a copy of the catalog in insertion order.
func (s *Service) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.products)
}

// LowStock returns the products with stock at or below threshold, in
// catalog order.
func (s *Service) LowStock(threshold int) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Product

	for _, p := range s.products {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}

	return out
}

func (s *Service) Get(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Product{}, false
	}

	return s.products[idx], true
}

func (s *Service) newProduct(params AddParams) Product {
	return Product{
		ID:    s.ids.NewID(),
		Name:  params.Name,
		Price: params.Price,
		Stock: params.Stock,
	}
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p Product) bool { return p.ID == id })
}

// replace swaps in the next snapshot and persists it. Callers hold s.mu.
func (s *Service) replace(ctx context.Context, next []Product) error {
	s.products = next

	if err := snapshot.Write(ctx, s.store, snapshot.KeyProducts, next); err != nil {
		return fmt.Errorf("persisting catalog: %w", err)
	}

	return nil
}
