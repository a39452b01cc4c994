package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storezee/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultConnectTimeout = 10 * time.Second

// Connect builds the shared pool. MaxConns bounds concurrent transactional sessions;
// callers past it block inside Acquire until their context expires.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout(cfg))
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database pool ready",
		"host", cfg.Host,
		"database", cfg.DBName,
		"max_conns", poolCfg.MaxConns)

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

func connectTimeout(cfg config.DBConfig) time.Duration {
	if cfg.AcquireTimeout > defaultConnectTimeout {
		return cfg.AcquireTimeout
	}
	return defaultConnectTimeout
}
