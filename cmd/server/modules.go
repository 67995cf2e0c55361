package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/showroom/internal/api"
	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/internal/infrastructure"
	"github.com/JaimeStill/showroom/pkg/lifecycle"
	"github.com/JaimeStill/showroom/pkg/module"
	"github.com/JaimeStill/showroom/pkg/web"
)

// Modules holds every prefix-mounted module.
type Modules struct {
	API *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

const readyTimeout = 2 * time.Second

// pages maps the site's fixed routes onto files in the public directory.
// "/products" and "/contact" also answer with a trailing slash. "/admin"
// is exact while "/admin/{path...}" covers everything below it.
var pages = []web.PageDef{
	{Route: "/{$}", File: "index.html"},
	{Route: "/products", File: "products.html"},
	{Route: "/products/{$}", File: "products.html"},
	{Route: "/contact", File: "contact.html"},
	{Route: "/contact/{$}", File: "contact.html"},
	{Route: "/admin", File: "admin/login.html"},
	{Route: "/admin/{path...}", File: "admin/index.html"},
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", handleHealth)
	router.HandleNative("GET /readyz", handleReady(infra.Lifecycle, infra.Logger, readinessChecks(infra)...))

	web.RegisterPages(router, cfg.Web.PublicDir, infra.Logger, pages...)

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readinessCheck pings one backing service for /readyz.
type readinessCheck struct {
	name string
	ping func(ctx context.Context) error
}

func readinessChecks(infra *infrastructure.Infrastructure) []readinessCheck {
	checks := []readinessCheck{{name: "database", ping: infra.Database.Ping}}
	if infra.Cache.Enabled() {
		checks = append(checks, readinessCheck{name: "cache", ping: infra.Cache.Ping})
	}
	return checks
}

func handleReady(lc lifecycle.ReadinessChecker, logger *slog.Logger, checks ...readinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			notReady(w)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, c := range checks {
			if err := c.ping(ctx); err != nil {
				logger.Warn("readiness check failed", "dependency", c.name, "error", err)
				notReady(w)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}

func notReady(w http.ResponseWriter) {
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte("NOT READY"))
}
