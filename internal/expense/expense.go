package expense

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
)

var ErrDescriptionRequired = errors.New("expense description is required")

type Expense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// Service is the expense ledger, kept newest first.
type Service struct {
	mu       sync.Mutex
	store    snapshot.Store
	ids      ids.Generator
	now      func() time.Time
	expenses []Expense
}

// NewService builds the ledger. A nil now defaults to time.Now.
func NewService(store snapshot.Store, gen ids.Generator, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{store: store, ids: gen, now: now}
}

func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := snapshot.Read[Expense](ctx, s.store, snapshot.KeyExpenses)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			s.expenses = nil
			return nil
		}

		return err
	}

	s.expenses = expenses

	return nil
}

func (s *Service) AddExpense(ctx context.Context, description string, amount float64) (*Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := Expense{
		ID:          s.ids.NewID(),
		Date:        s.now().UTC().Round(0),
		Description: description,
		Amount:      amount,
	}

	next := make([]Expense, 0, len(s.expenses)+1)
	next = append(next, e)
	next = append(next, s.expenses...)

	s.expenses = next

	if err := snapshot.Write(ctx, s.store, snapshot.KeyExpenses, next); err != nil {
		return nil, fmt.Errorf("persisting expenses: %w", err)
	}

	return &e, nil
}

// List returns the ledger newest first.
func (s *Service) List() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.expenses)
}

// Total sums every recorded expense.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, e := range s.expenses {
		total += e.Amount
	}

	return total
}
