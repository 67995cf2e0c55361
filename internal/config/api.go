package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"

	"github.com/JaimeStill/showroom/pkg/openapi"
)

const EnvAPIMaxBodySize = "API_MAX_BODY_SIZE"

var openAPIEnv = &openapi.ConfigEnv{
	Title:        "API_OPENAPI_TITLE",
	Description:  "API_OPENAPI_DESCRIPTION",
	ContactEmail: "API_OPENAPI_CONTACT_EMAIL",
}

// APIConfig holds settings for the /api module.
type APIConfig struct {
	// MaxBodySize caps parsed request bodies. Human sizes such as "100kb"
	// use 1024-based units. Default: "100kb".
	MaxBodySize    string         `toml:"max_body_size"`
	OpenAPI        openapi.Config `toml:"openapi"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes returns the parsed body limit. Call after Finalize.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the API configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge applies non-zero values from overlay.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "100kb"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *APIConfig) validate() error {
	size, err := units.RAMInBytes(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size
	return nil
}
