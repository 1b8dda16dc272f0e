package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Gelato", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "€", cfg.App.Currency)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "postgres://postgres:@localhost:5432/gelato?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_PREFIX", "shop1:")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://gelato.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, config.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "shop1:", cfg.Redis.Prefix)
	assert.Equal(t, []string{"http://localhost:3000", "https://gelato.example"}, cfg.Server.CORSOrigins)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "floppy")

	_, err := config.Load()
	assert.ErrorContains(t, err, "floppy")
}
