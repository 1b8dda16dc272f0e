package ids_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/ids"
)

func TestSequence_NewID(t *testing.T) {
	seq := ids.NewSequence("p-")

	assert.Equal(t, "p-1", seq.NewID())
	assert.Equal(t, "p-2", seq.NewID())
	assert.Equal(t, "p-3", seq.NewID())
}

func TestUUID_NewID(t *testing.T) {
	var gen ids.Generator = ids.UUID{}

	a := gen.NewID()
	b := gen.NewID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
