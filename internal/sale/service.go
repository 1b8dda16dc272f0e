package sale

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
)

// Inventory takes sold quantities off the shelf.
//
//go:generate mockgen -source=service.go -destination=inventory_mock.go -package=sale
type Inventory interface {
	ApplySaleDecrement(ctx context.Context, lines []catalog.StockLine) error
}

// Service is the sales ledger, kept newest first.
type Service struct {
	mu        sync.Mutex
	store     snapshot.Store
	inventory Inventory
	ids       ids.Generator
	now       func() time.Time
	sales     []Sale
}

// NewService builds the ledger. A nil now defaults to time.Now.
func NewService(store snapshot.Store, inventory Inventory, gen ids.Generator, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{store: store, inventory: inventory, ids: gen, now: now}
}

type CreateParams struct {
	Items         []LineItem
	CustomerID    string
	PaymentMethod PaymentMethod
	Note          string
}

type ListFilter struct {
	Query string
}

func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := snapshot.Read[Sale](ctx, s.store, snapshot.KeySales)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			s.sales = nil
			return nil
		}

		return err
	}

	s.sales = sales

	return nil
}

// CreateSale records a sale of params.Items. With no items there is nothing
// to record: it returns (nil, nil) and touches neither stock nor the ledger.
// Otherwise stock is decremented first and the sale is then put at the front
// of the ledger.
func (s *Service) CreateSale(ctx context.Context, params CreateParams) (*Sale, error) {
	if len(params.Items) == 0 {
		return nil, nil
	}

	for i, it := range params.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d has quantity %d", ErrInvalidItem, i+1, it.Quantity)
		}

		if it.Price < 0 {
			return nil, fmt.Errorf("%w: line %d has negative price", ErrInvalidItem, i+1)
		}
	}

	method := params.PaymentMethod
	if method == "" {
		method = PaymentCash
	}

	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := slices.Clone(params.Items)

	sale := Sale{
		ID:            s.ids.NewID(),
		Date:          s.now().UTC().Round(0),
		Items:         items,
		Total:         Total(items),
		CustomerID:    params.CustomerID,
		PaymentMethod: method,
		Note:          params.Note,
	}

	if err := s.inventory.ApplySaleDecrement(ctx, stockLines(items)); err != nil {
		return nil, fmt.Errorf("decrementing stock: %w", err)
	}

	next := make([]Sale, 0, len(s.sales)+1)
	next = append(next, sale)
	next = append(next, s.sales...)

	s.sales = next

	if err := snapshot.Write(ctx, s.store, snapshot.KeySales, next); err != nil {
		return nil, fmt.Errorf("persisting sales: %w", err)
	}

	return &sale, nil
}

// List returns the ledger newest first, narrowed to sales matching
// filter.Query.
func (s *Service) List(filter ListFilter) []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filter.Query == "" {
		return slices.Clone(s.sales)
	}

	var out []Sale

	for _, sale := range s.sales {
		if Matches(sale, filter.Query) {
			out = append(out, sale)
		}
	}

	return out
}

func stockLines(items []LineItem) []catalog.StockLine {
	lines := make([]catalog.StockLine, len(items))
	for i, it := range items {
		lines[i] = catalog.StockLine{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	return lines
}
