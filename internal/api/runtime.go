package api

import (
	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/internal/infrastructure"
	"github.com/JaimeStill/showroom/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Auth       config.AuthConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Cache:     infra.Cache,
		},
		Pagination: cfg.Pagination,
		Auth:       cfg.Auth,
	}
}
