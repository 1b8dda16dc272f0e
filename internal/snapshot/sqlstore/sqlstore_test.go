package sqlstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/database"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/sqlstore"
)

func openStore(t *testing.T, envVar, driver string, dialect sqlstore.Dialect) *sqlstore.Store {
	t.Helper()

	dsn := os.Getenv(envVar)
	if dsn == "" {
		t.Skipf("%s not set", envVar)
	}

	db, err := database.New(driver, dsn)
	if err != nil {
		t.Skipf("database not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := sqlstore.New(db, dialect)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))

	return s
}

func exerciseStore(t *testing.T, s *sqlstore.Store) {
	ctx := context.Background()
	require.NoError(t, s.Delete(ctx, snapshot.Keys...))

	_, err := s.Load(ctx, snapshot.KeyCustomers)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	require.NoError(t, s.Save(ctx, snapshot.KeyCustomers, []byte(`[]`)))
	require.NoError(t, s.Save(ctx, snapshot.KeyCustomers, []byte(`[{"id":"c1","name":"Ana","phone":""}]`)))

	got, err := s.Load(ctx, snapshot.KeyCustomers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1","name":"Ana","phone":""}]`, string(got))

	require.NoError(t, s.Delete(ctx, snapshot.Keys...))

	_, err = s.Load(ctx, snapshot.KeyCustomers)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestStore_Postgres(t *testing.T) {
	exerciseStore(t, openStore(t, "TEST_POSTGRES_DSN", database.DriverPostgres, sqlstore.Postgres))
}

func TestStore_MySQL(t *testing.T) {
	exerciseStore(t, openStore(t, "TEST_MYSQL_DSN", database.DriverMySQL, sqlstore.MySQL))
}

func TestNew_UnknownDialect(t *testing.T) {
	_, err := sqlstore.New(nil, "oracle")
	assert.Error(t, err)
}
