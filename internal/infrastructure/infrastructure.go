// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, cache) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/internal/migrations"
	"github.com/JaimeStill/showroom/pkg/cache"
	"github.com/JaimeStill/showroom/pkg/database"
	"github.com/JaimeStill/showroom/pkg/lifecycle"
	"github.com/JaimeStill/showroom/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and the optional cache.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Cache     cache.System

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Cache:     cache.New(&cfg.Cache, logger),
		dbConfig:  &cfg.Database,
	}, nil
}

// Start connects the database, applies migrations, and connects the
// cache, registering each with the lifecycle coordinator. The first
// failure aborts startup.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if i.dbConfig.MigrateOnStart() {
		if err := migrations.Up(i.dbConfig.URL(), i.Logger.With("system", "migrations")); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}
	if err := i.Cache.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("cache start failed: %w", err)
	}
	return nil
}
