package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  input TEXT NOT NULL,
  frequencies JSONB NOT NULL,
  codes JSONB NOT NULL,
  encoded TEXT NOT NULL,
  original_bits INT NOT NULL,
  encoded_bits INT NOT NULL,
  saved_bits INT NOT NULL,
  ratio DOUBLE PRECISION NOT NULL,
  verified BOOLEAN NOT NULL,
  created_at TIMESTAMPTZ NOT NULL
)`)
	return err
}
