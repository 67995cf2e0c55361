package main

import (
	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/internal/infrastructure"
	"github.com/JaimeStill/showroom/pkg/middleware"
	"github.com/JaimeStill/showroom/pkg/web"
)

// buildMiddleware creates the global stack. Recover is outermost so a
// panic anywhere below becomes the generic 500.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.Recover(infra.Logger))
	mw.Use(middleware.Logger(infra.Logger))
	mw.Use(middleware.CORS(&cfg.CORS))
	mw.Use(middleware.ParseBody(cfg.API.MaxBodySizeBytes(), infra.Logger))
	mw.Use(web.Static(cfg.Web.PublicDir))
	return mw
}
