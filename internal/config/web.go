package config

import (
	"fmt"
	"os"
)

const EnvWebPublicDir = "WEB_PUBLIC_DIR"

// WebConfig locates the static site on disk.
type WebConfig struct {
	PublicDir string `toml:"public_dir"`
}

// Finalize applies defaults and environment overrides.
func (c *WebConfig) Finalize() error {
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if v := os.Getenv(EnvWebPublicDir); v != "" {
		c.PublicDir = v
	}
	if c.PublicDir == "" {
		return fmt.Errorf("public_dir required")
	}
	return nil
}

// Merge applies non-zero values from overlay.
func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.PublicDir != "" {
		c.PublicDir = overlay.PublicDir
	}
}
