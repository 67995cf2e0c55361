package api

import (
	"net/http"

	"github.com/JaimeStill/showroom/internal/auth"
	"github.com/JaimeStill/showroom/internal/inquiries"
	"github.com/JaimeStill/showroom/internal/products"
	"github.com/JaimeStill/showroom/pkg/openapi"
	"github.com/JaimeStill/showroom/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	adminOnly := auth.AdminOnly(domain.Auth, runtime.Logger)

	authHandler := auth.NewHandler(domain.Auth, runtime.Logger)
	productsHandler := products.NewHandler(domain.Products, runtime.Logger, runtime.Pagination, adminOnly...)
	inquiriesHandler := inquiries.NewHandler(domain.Inquiries, runtime.Logger, runtime.Pagination, adminOnly...)

	routes.Register(
		mux,
		BasePath,
		spec,
		authHandler.Routes(),
		productsHandler.Routes(),
		inquiriesHandler.Routes(),
	)
}
