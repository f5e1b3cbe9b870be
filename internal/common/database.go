package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pipetrak/pipetrak/gen/ent"
	"github.com/pipetrak/pipetrak/internal/repository"
)

// DBResult bundles an opened Ent client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for in-memory databases
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an in-memory
// SQLite one (for one-shot CLI runs and local experiments).
func InitDatabase(ctx context.Context, cfg *Config, inMemory bool, logger *slog.Logger) (*DBResult, error) {
	if inMemory {
		client, err := repository.OpenSQLite(ctx, repository.InMemoryDSN, logger)
		if err != nil {
			return nil, WrapError(err, "open in-memory database")
		}
		return &DBResult{
			Client:  client,
			Cleanup: func() { _ = client.Close() },
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, WrapError(err, "open database")
	}
	return &DBResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			_ = client.Close()
			pool.Close()
		},
	}, nil
}
