// Package postgres stores saves in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/paperdoll/internal/config"
)

// ErrSchemaMissing is returned by Health when the database answers but the
// save tables have not been migrated.
var ErrSchemaMissing = errors.New("postgres: saves schema not migrated")

const applicationName = "paperdoll"

// Pool is the connection pool shared by the save repositories.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool connects to the configured database and verifies it answers.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a connected Pool or a non-nil error.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres: parsing config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: creating pool for %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: pinging %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &Pool{pool: pool}, nil
}

// Health reports whether the database answers within timeout and holds the
// saves table. An unmigrated database yields ErrSchemaMissing.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	var migrated bool
	if err := p.pool.QueryRow(ctx, `SELECT to_regclass('saves') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("postgres: health: %w", err)
	}
	if !migrated {
		return ErrSchemaMissing
	}
	return nil
}

// Close releases all connections.
func (p *Pool) Close() { p.pool.Close() }

// DB returns the underlying pgxpool.Pool for the repositories.
func (p *Pool) DB() *pgxpool.Pool { return p.pool }
