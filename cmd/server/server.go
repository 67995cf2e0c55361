package main

import (
	"time"

	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/internal/infrastructure"
	"github.com/JaimeStill/showroom/pkg/web"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)

	handler := buildMiddleware(infra, cfg).Apply(router)

	if !web.Exists(cfg.Web.PublicDir) {
		infra.Logger.Warn("public directory not found; pages will return 404", "public_dir", cfg.Web.PublicDir)
	}

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"public_dir", cfg.Web.PublicDir,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start connects the data store and begins serving. A data store that
// cannot be reached aborts startup before the port is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
