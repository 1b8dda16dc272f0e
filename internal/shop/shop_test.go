package shop_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gelato/internal/cart"
	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/checkout"
	"github.com/MrJamesThe3rd/gelato/internal/config"
	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
	"github.com/MrJamesThe3rd/gelato/internal/shop"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/memory"
)

func openShop(t *testing.T, store snapshot.Store) *shop.Shop {
	t.Helper()

	s, err := shop.Open(context.Background(), store, shop.Options{
		IDs: ids.NewSequence("id"),
		Now: func() time.Time { return time.Date(2026, 8, 14, 15, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	return s
}

func sellVanilla(t *testing.T, s *shop.Shop, qty int) *sale.Sale {
	t.Helper()

	p, ok := s.Catalog.Get("id1")
	require.True(t, ok)

	c := cart.New()
	for range qty {
		require.NoError(t, c.Add(p))
	}

	got, err := s.Checkout.Checkout(context.Background(), c, checkout.Request{CustomerName: "Awa"})
	require.NoError(t, err)

	return got
}

func TestOpen_Seeds(t *testing.T) {
	s := openShop(t, memory.New())

	products := s.Catalog.List()
	require.Len(t, products, 3)
	assert.Equal(t, catalog.Product{ID: "id1", Name: "Vanilla", Price: 1.50, Stock: 100}, products[0])

	assert.Empty(t, s.Sales.List(sale.ListFilter{}))
	assert.Empty(t, s.Customers.List())
	assert.Empty(t, s.Expenses.List())
}

func TestShop_SellAndReopen(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := openShop(t, store)

	got := sellVanilla(t, s, 3)
	assert.InDelta(t, 4.50, got.Total, 1e-9)

	_, err := s.Expenses.AddExpense(ctx, "Cones", 1.25)
	require.NoError(t, err)

	reopened := openShop(t, store)

	p, _ := reopened.Catalog.Get("id1")
	assert.Equal(t, 97, p.Stock)
	assert.Equal(t, s.Sales.List(sale.ListFilter{}), reopened.Sales.List(sale.ListFilter{}))
	assert.Equal(t, s.Customers.List(), reopened.Customers.List())
	assert.Equal(t, s.Expenses.List(), reopened.Expenses.List())

	summary := reopened.Dashboard()
	assert.InDelta(t, 4.50, summary.Revenue, 1e-9)
	assert.Equal(t, 1, summary.SalesCount)
	assert.InDelta(t, 3.25, summary.Net, 1e-9)
}

func TestShop_Reset(t *testing.T) {
	ctx := context.Background()
	s := openShop(t, memory.New())

	sellVanilla(t, s, 3)

	_, err := s.Catalog.AddProduct(ctx, catalog.AddParams{Name: "Mint", Price: 2, Stock: 5})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Reset(ctx, false), shop.ErrNotConfirmed)
	assert.Len(t, s.Sales.List(sale.ListFilter{}), 1)

	require.NoError(t, s.Reset(ctx, true))

	products := s.Catalog.List()
	require.Len(t, products, 3)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"Vanilla", "Chocolate", "Strawberry"}, names)
	assert.Equal(t, 100, products[0].Stock)
	assert.Empty(t, s.Sales.List(sale.ListFilter{}))
	assert.Empty(t, s.Customers.List())
	assert.Empty(t, s.Expenses.List())
}

func TestShop_Reset_DeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := snapshot.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]byte(`[]`), nil).Times(len(snapshot.Keys))
	store.EXPECT().Delete(gomock.Any(), snapshot.Keys).Return(errors.New("read-only"))

	s := openShop(t, store)

	err := s.Reset(context.Background(), true)
	assert.ErrorContains(t, err, "read-only")
}

func TestShop_ImportAndExport(t *testing.T) {
	ctx := context.Background()
	s := openShop(t, memory.New())

	added, err := s.Importer.Import(ctx, strings.NewReader("Nom;Prix;Stock\nPistache;1,90;8\n"))
	require.NoError(t, err)
	require.Len(t, added, 1)

	var buf strings.Builder
	require.NoError(t, s.Export.ExportProducts(&buf))
	assert.Contains(t, buf.String(), `"Pistache","1.9","8"`)

	low := s.Dashboard().LowStock
	require.Len(t, low, 1)
	assert.Equal(t, "Pistache", low[0].Name)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Backend = config.BackendMemory

		store, closer, err := shop.OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer closer.Close()

		openShop(t, store)
	})

	t.Run("File", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Backend = config.BackendFile
		cfg.Storage.Dir = filepath.Join(t.TempDir(), "data")

		store, closer, err := shop.OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer closer.Close()

		sellVanilla(t, openShop(t, store), 2)

		p, _ := openShop(t, store).Catalog.Get("id1")
		assert.Equal(t, 98, p.Stock)
	})

	t.Run("Unknown", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Backend = "tape"

		_, _, err := shop.OpenStore(ctx, cfg)
		assert.Error(t, err)
	})
}
