package snapshot

import (
	"context"
	"errors"
)

// Keys under which each store keeps its whole collection.
const (
	KeyProducts  = "products"
	KeySales     = "sales"
	KeyCustomers = "customers"
	KeyExpenses  = "expenses"
)

// Keys lists every key the application writes.
var Keys = []string{KeyProducts, KeySales, KeyCustomers, KeyExpenses}

var (
	ErrNotFound = errors.New("snapshot not found")
	ErrCorrupt  = errors.New("corrupt snapshot")
)

// Store is durable key-value storage for collection snapshots. Save always
// replaces the previous value for the key.
//
//go:generate mockgen -source=store.go -destination=store_mock.go -package=snapshot
type Store interface {
	// Load returns ErrNotFound when nothing was saved under key.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes the given keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
