package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/cleanup"
)

// Postgres error codes we react to
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewPool opens the shared connection pool and registers its closing on shutdown.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection pool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging connection pool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s error: %w: %w", op, errorvalues.ErrStorageUnavailable, err)
}
