package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/expense"
	"github.com/MrJamesThe3rd/gelato/internal/ids"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/memory"
)

func stepClock(start time.Time) func() time.Time {
	current := start

	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func TestService_AddExpense(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	svc := expense.NewService(store, ids.NewSequence("e"), stepClock(start))
	require.NoError(t, svc.Load(ctx))

	_, err := svc.AddExpense(ctx, "Cones", 12.40)
	require.NoError(t, err)

	second, err := svc.AddExpense(ctx, "Freezer repair", 80)
	require.NoError(t, err)
	assert.Equal(t, start.Add(2*time.Minute), second.Date)

	_, err = svc.AddExpense(ctx, "", 1)
	assert.ErrorIs(t, err, expense.ErrDescriptionRequired)

	got := svc.List()
	require.Len(t, got, 2)
	assert.Equal(t, "Freezer repair", got[0].Description, "newest first")
	assert.Equal(t, "Cones", got[1].Description)
	assert.InDelta(t, 92.40, svc.Total(), 1e-9)

	reloaded := expense.NewService(store, ids.NewSequence("e"), nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, got, reloaded.List())
}
