package shop

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/gelato/internal/config"
	"github.com/MrJamesThe3rd/gelato/internal/database"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/file"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/memory"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/redisstore"
	"github.com/MrJamesThe3rd/gelato/internal/snapshot/sqlstore"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore opens the storage backend selected in cfg. The returned closer
// releases its connections.
func OpenStore(ctx context.Context, cfg *config.Config) (snapshot.Store, io.Closer, error) {
	slog.Info("opening storage", "backend", cfg.Storage.Backend)

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(), nopCloser{}, nil

	case config.BackendFile:
		store, err := file.New(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}

		return store, nopCloser{}, nil

	case config.BackendPostgres:
		return openSQL(ctx, database.DriverPostgres, cfg.ConnectionString(), sqlstore.Postgres)

	case config.BackendMySQL:
		return openSQL(ctx, database.DriverMySQL, cfg.MySQL.DSN, sqlstore.MySQL)

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}

		return redisstore.New(client, cfg.Redis.Prefix), client, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func openSQL(ctx context.Context, driver, connStr string, dialect sqlstore.Dialect) (snapshot.Store, io.Closer, error) {
	db, err := database.New(driver, connStr)
	if err != nil {
		return nil, nil, err
	}

	store, err := sqlstore.New(db, dialect)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return store, db, nil
}
