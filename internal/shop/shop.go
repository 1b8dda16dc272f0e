// Package shop assembles the stores and services of one ice-cream shop.
package shop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/checkout"
	"github.com/MrJamesThe3rd/gelato/internal/customer"
	"github.com/MrJamesThe3rd/gelato/internal/dashboard"
	"github.com/MrJamesThe3rd/gelato/internal/expense"
	"github.com/MrJamesThe3rd/gelato/internal/export"
	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/importer"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
)

var ErrNotConfirmed = errors.New("reset not confirmed")

type Options struct {
	// IDs defaults to random UUIDs.
	IDs ids.Generator
	// Now defaults to time.Now.
	Now func() time.Time
	// Currency prefixes amounts in text output. Defaults to "€".
	Currency string
}

type Shop struct {
	mu    sync.Mutex
	store snapshot.Store

	Catalog   *catalog.Service
	Customers *customer.Service
	Sales     *sale.Service
	Expenses  *expense.Service
	Checkout  *checkout.Service
	Export    *export.Service
	Importer  *importer.Service
}

// Open builds every service on top of store and loads their data. A store
// with no catalog yet gets the seed catalog.
func Open(ctx context.Context, store snapshot.Store, opts Options) (*Shop, error) {
	if opts.IDs == nil {
		opts.IDs = ids.UUID{}
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Currency == "" {
		opts.Currency = "€"
	}

	products := catalog.NewService(store, opts.IDs)
	customers := customer.NewService(store, opts.IDs)
	sales := sale.NewService(store, products, opts.IDs, opts.Now)

	s := &Shop{
		store:     store,
		Catalog:   products,
		Customers: customers,
		Sales:     sales,
		Expenses:  expense.NewService(store, opts.IDs, opts.Now),
		Checkout:  checkout.NewService(customers, sales),
		Export:    export.NewService(products, sales, opts.Currency),
		Importer:  importer.NewService(products),
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shop) load(ctx context.Context) error {
	loaders := []struct {
		name string
		load func(context.Context) error
	}{
		{"catalog", s.Catalog.Load},
		{"customers", s.Customers.Load},
		{"sales", s.Sales.Load},
		{"expenses", s.Expenses.Load},
	}

	for _, l := range loaders {
		if err := l.load(ctx); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	return nil
}

// Reset wipes every collection and reloads, which leaves the seed catalog
// and empty ledgers. confirmed is the caller's answer to "are you sure".
func (s *Shop) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, snapshot.Keys...); err != nil {
		return fmt.Errorf("deleting data: %w", err)
	}

	return s.load(ctx)
}

// Dashboard summarises the current state of the shop.
func (s *Shop) Dashboard() dashboard.Summary {
	return dashboard.Summarize(s.Catalog.List(), s.Sales.List(sale.ListFilter{}), s.Expenses.List())
}
