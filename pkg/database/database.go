// Package database manages the shared PostgreSQL connection pool.
// The pool is opened by New, verified by Start, and closed when the
// lifecycle coordinator shuts down.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/JaimeStill/showroom/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotReady is returned when the connection is used before Start succeeds.
var ErrNotReady = errors.New("database not ready")

// System provides access to the connection pool and its lifecycle.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error
}

type database struct {
	conn   *sql.DB
	logger *slog.Logger
	cfg    *Config
	ready  atomic.Bool
}

// New opens a pgx-backed pool configured from cfg. No connection is made
// until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:   conn,
		logger: logger.With("system", "database"),
		cfg:    cfg,
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Ping verifies connectivity within the configured connection timeout.
func (d *database) Ping(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.ConnTimeoutDuration())
	defer cancel()
	return d.conn.PingContext(ctx)
}

// Start verifies the connection and registers the pool close as a
// cleanup hook, so it runs after the HTTP server drains. A failed ping
// aborts startup.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.ready.Store(true)

	d.logger.Info(
		"database connected",
		"host", d.cfg.Host,
		"port", d.cfg.Port,
		"name", d.cfg.Name,
	)

	lc.OnCleanup(func() {
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
