package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/memory"
)

func TestStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, err := s.Load(ctx, snapshot.KeyProducts)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, s.Save(ctx, snapshot.KeyProducts, payload))

	// Mutating the caller's buffer must not leak into the store.
	payload[0] = 'X'

	got, err := s.Load(ctx, snapshot.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Delete(ctx, snapshot.KeyProducts, snapshot.KeySales))

	_, err = s.Load(ctx, snapshot.KeyProducts)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}
