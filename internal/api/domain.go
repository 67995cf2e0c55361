package api

import (
	"github.com/JaimeStill/showroom/internal/auth"
	"github.com/JaimeStill/showroom/internal/inquiries"
	"github.com/JaimeStill/showroom/internal/products"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth      auth.System
	Products  products.System
	Inquiries inquiries.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	tokens := auth.NewTokens(auth.TokenConfig{
		Secret: runtime.Auth.JWTSecret,
		TTL:    runtime.Auth.TokenTTLDuration(),
		Issuer: runtime.Auth.Issuer,
	})

	authSys := auth.New(
		runtime.Database.Connection(),
		tokens,
		auth.NewRevocations(runtime.Cache.Client()),
		runtime.Logger,
	)

	productsSys := products.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	inquiriesSys := inquiries.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Auth:      authSys,
		Products:  productsSys,
		Inquiries: inquiriesSys,
	}
}
