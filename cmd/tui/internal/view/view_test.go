package view

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
	"github.com/MrJamesThe3rd/gelato/internal/shop"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/memory"
)

type tick struct{}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newShop(t *testing.T) *shop.Shop {
	t.Helper()

	s, err := shop.Open(context.Background(), memory.New(), shop.Options{IDs: ids.NewSequence("id")})
	require.NoError(t, err)

	return s
}

func update[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)

	out, ok := next.(M)
	require.True(t, ok)

	return out, cmd
}

func TestProductsModel_CompletedFormSavesOnce(t *testing.T) {
	s := newShop(t)

	m, _ := update(t, NewProductsModel(s.Catalog), key("a"))
	require.Equal(t, productsStateForm, m.state)

	*m.fields = productFields{Name: "Mint", Price: "2,20", Stock: "5"}
	m.form.State = huh.StateCompleted

	m, save := update(t, m, tick{})
	require.NotNil(t, save)
	assert.Equal(t, productsStateSaving, m.state)
	assert.Nil(t, m.form)

	m, again := update(t, m, tick{})
	assert.Nil(t, again)

	m, _ = update(t, m, save())
	assert.Equal(t, productsStateBrowse, m.state)
	assert.Equal(t, "Added Mint.", m.status)

	products := s.Catalog.List()
	require.Len(t, products, 4)
	assert.Equal(t, "Mint", products[3].Name)
	assert.InDelta(t, 2.20, products[3].Price, 1e-9)
}

func TestPOSModel_CompletedCheckoutRecordsOneSale(t *testing.T) {
	s := newShop(t)

	m := NewPOSModel(s.Catalog, s.Checkout)
	m, _ = update(t, m, m.Init()())

	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("enter"))
	require.Equal(t, 2, m.cart.Lines()[0].Quantity)

	m, _ = update(t, m, key("c"))
	require.Equal(t, posStateCheckout, m.state)

	m.fields.Confirm = true
	m.fields.Method = string(sale.PaymentCard)
	m.form.State = huh.StateCompleted

	m, submit := update(t, m, tick{})
	require.NotNil(t, submit)
	assert.Equal(t, posStateSubmitting, m.state)

	m, again := update(t, m, tick{})
	assert.Nil(t, again)

	m, _ = update(t, m, submit())
	assert.Equal(t, posStateCatalog, m.state)
	assert.True(t, m.cart.IsEmpty())
	assert.NoError(t, m.err)

	sales := s.Sales.List(sale.ListFilter{})
	require.Len(t, sales, 1)
	assert.InDelta(t, 3.00, sales[0].Total, 1e-9)
	assert.Equal(t, sale.PaymentCard, sales[0].PaymentMethod)

	vanilla, _ := s.Catalog.Get("id1")
	assert.Equal(t, 98, vanilla.Stock)
}

func TestPOSModel_OutOfStockIsRefused(t *testing.T) {
	s := newShop(t)

	require.NoError(t, s.Catalog.UpdateProduct(context.Background(), "id1", catalog.UpdateParams{Stock: new(0)}))

	m := NewPOSModel(s.Catalog, s.Checkout)
	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, key("enter"))

	assert.True(t, m.cart.IsEmpty())
	assert.Equal(t, "Vanilla is out of stock.", m.status)
}

func TestExpensesModel_CompletedFormSavesOnce(t *testing.T) {
	s := newShop(t)

	m, _ := update(t, NewExpensesModel(s.Expenses), key("a"))
	require.True(t, m.adding)

	*m.fields = expenseFields{Description: "Cones", Amount: "12.50"}
	m.form.State = huh.StateCompleted

	m, save := update(t, m, tick{})
	require.NotNil(t, save)
	assert.True(t, m.saving)

	m, again := update(t, m, tick{})
	assert.Nil(t, again)

	m, _ = update(t, m, save())
	assert.False(t, m.saving)
	assert.False(t, m.adding)

	require.Len(t, s.Expenses.List(), 1)
	assert.InDelta(t, 12.50, s.Expenses.Total(), 1e-9)
}

func TestSettingsModel_ResetRunsOnce(t *testing.T) {
	s := newShop(t)

	_, err := s.Expenses.AddExpense(context.Background(), "Cones", 12.5)
	require.NoError(t, err)

	m := NewSettingsModel(s)
	m.fields.Action = actionReset
	m.form.State = huh.StateCompleted

	m, _ = update(t, m, tick{})
	require.Equal(t, settingsStateConfirmReset, m.state)

	m.fields.Confirm = true
	m.form.State = huh.StateCompleted

	m, reset := update(t, m, tick{})
	require.NotNil(t, reset)
	assert.Equal(t, settingsStateResetting, m.state)

	m, again := update(t, m, tick{})
	assert.Nil(t, again)

	var result tea.Msg

	batch, ok := reset().(tea.BatchMsg)
	require.True(t, ok)

	for _, cmd := range batch {
		if msg, ok := cmd().(resetResultMsg); ok {
			result = msg
		}
	}

	require.NotNil(t, result)

	m, _ = update(t, m, result)
	assert.Equal(t, settingsStateResult, m.state)
	assert.Empty(t, s.Expenses.List())
}
