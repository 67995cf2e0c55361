package openapi

import "os"

// Config is the document metadata rendered into the info block.
type Config struct {
	Title        string `toml:"title"`
	Description  string `toml:"description"`
	ContactEmail string `toml:"contact_email"`
}

// ConfigEnv names the environment variables that override Config.
type ConfigEnv struct {
	Title        string
	Description  string
	ContactEmail string
}

// Finalize fills unset metadata and applies environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Showroom API"
	}
	if c.Description == "" {
		c.Description = "Product catalogue, customer inquiries, and account management for the showroom site."
	}
	if env == nil {
		return nil
	}
	for _, o := range []struct {
		key    string
		target *string
	}{
		{env.Title, &c.Title},
		{env.Description, &c.Description},
		{env.ContactEmail, &c.ContactEmail},
	} {
		if o.key == "" {
			continue
		}
		if v := os.Getenv(o.key); v != "" {
			*o.target = v
		}
	}
	return nil
}

// Merge copies the non-empty fields of overlay onto c.
func (c *Config) Merge(overlay *Config) {
	mergeString(&c.Title, overlay.Title)
	mergeString(&c.Description, overlay.Description)
	mergeString(&c.ContactEmail, overlay.ContactEmail)
}

// Info builds the document info block for version.
func (c *Config) Info(version string) *Info {
	info := &Info{
		Title:       c.Title,
		Version:     version,
		Description: c.Description,
	}
	if c.ContactEmail != "" {
		info.Contact = &Contact{Email: c.ContactEmail}
	}
	return info
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
