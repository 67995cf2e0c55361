// Package api assembles the /api module: the auth, products, and
// inquiries route groups plus the generated OpenAPI document and its
// interactive reference page.
package api

import (
	"net/http"

	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/internal/infrastructure"
	"github.com/JaimeStill/showroom/pkg/middleware"
	"github.com/JaimeStill/showroom/pkg/module"
	"github.com/JaimeStill/showroom/pkg/openapi"
)

const (
	// BasePath is the mount point of the API module.
	BasePath = "/api"

	// Version is reported in the OpenAPI info block.
	Version = "1.0.0"
)

// NewModule builds the API module from the service configuration and
// shared infrastructure.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	return newModule(cfg, runtime, domain)
}

func newModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, Version)
	spec.Info = cfg.API.OpenAPI.Info(Version)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))
	mux.HandleFunc("GET /docs", serveDocs)

	m := module.New(BasePath, mux)
	m.Use(middleware.TrimSlash())

	return m, nil
}
