package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthJWTSecret = "AUTH_JWT_SECRET"
	EnvAuthTokenTTL  = "AUTH_TOKEN_TTL"
	EnvAuthIssuer    = "AUTH_ISSUER"
)

// AuthConfig configures token issuance.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  string `toml:"token_ttl"`
	Issuer    string `toml:"issuer"`
}

// TokenTTLDuration parses TokenTTL. Call after Finalize.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.JWTSecret != "" {
		c.JWTSecret = overlay.JWTSecret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.TokenTTL == "" {
		c.TokenTTL = "24h"
	}
	if c.Issuer == "" {
		c.Issuer = "showroom"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthJWTSecret); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv(EnvAuthTokenTTL); v != "" {
		c.TokenTTL = v
	}
	if v := os.Getenv(EnvAuthIssuer); v != "" {
		c.Issuer = v
	}
}

func (c *AuthConfig) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret required (set %s)", EnvAuthJWTSecret)
	}
	ttl, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	return nil
}
