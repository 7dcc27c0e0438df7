package infra

import (
	"context"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/utils"
)

const DEFAULT_MAX_CONNECTIONS = 20

// NewPostgresConnectionPool waits for the database to answer before returning the pool.
func NewPostgresConnectionPool(ctx context.Context, connectionString string, maxConnections int) (*pgxpool.Pool, error) {
	logger := utils.LoggerFromContext(ctx)

	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}
	if maxConnections <= 0 {
		maxConnections = DEFAULT_MAX_CONNECTIONS
	}
	cfg.MaxConns = int32(maxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	err = retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, "database not reachable yet", slog.Uint64("attempt", uint64(n)),
				slog.String("error", err.Error()))
		}),
	)
	if err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "database is not reachable")
	}
	return pool, nil
}
