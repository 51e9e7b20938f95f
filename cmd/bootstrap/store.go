package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"stayhub/internal/pkg/config"
	"stayhub/internal/recordstore"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordStore,
	),
)

// NewRecordStore selects the record store backend from configuration.
// The memory driver needs no external services and is used by local
// development and tests; postgres connects a pool and creates the schema
// on startup.
func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (recordstore.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		logger.Info("record store initialized", "driver", "memory")
		return recordstore.NewMemory(), nil

	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Store.BuildDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}

		store := recordstore.NewPostgres(pool)

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := pool.Ping(ctx); err != nil {
					return fmt.Errorf("failed to ping database: %w", err)
				}
				if err := store.EnsureSchema(ctx); err != nil {
					return fmt.Errorf("failed to ensure schema: %w", err)
				}
				logger.Info("record store initialized", "driver", "postgres", "host", cfg.Store.Host)
				return nil
			},
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})

		return store, nil

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}
