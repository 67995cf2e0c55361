package database_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/showroom/pkg/database"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &database.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Host", cfg.Host, "localhost"},
		{"Port", cfg.Port, 5432},
		{"Name", cfg.Name, "showroom"},
		{"User", cfg.User, "showroom"},
		{"SSLMode", cfg.SSLMode, "disable"},
		{"MaxOpenConns", cfg.MaxOpenConns, 25},
		{"MaxIdleConns", cfg.MaxIdleConns, 5},
		{"ConnMaxLifetime", cfg.ConnMaxLifetime, "15m"},
		{"ConnTimeout", cfg.ConnTimeout, "5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if !cfg.MigrateOnStart() {
		t.Error("MigrateOnStart() = false, want true by default")
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "envhost")
	t.Setenv("TEST_DB_PORT", "5434")
	t.Setenv("TEST_DB_NAME", "envdb")
	t.Setenv("TEST_DB_USER", "envuser")
	t.Setenv("TEST_DB_MIGRATE", "false")

	cfg := &database.Config{}
	env := &database.Env{
		Host:    "TEST_DB_HOST",
		Port:    "TEST_DB_PORT",
		Name:    "TEST_DB_NAME",
		User:    "TEST_DB_USER",
		Migrate: "TEST_DB_MIGRATE",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "envhost" {
		t.Errorf("Host = %q, want %q", cfg.Host, "envhost")
	}
	if cfg.Port != 5434 {
		t.Errorf("Port = %d, want %d", cfg.Port, 5434)
	}
	if cfg.Name != "envdb" {
		t.Errorf("Name = %q, want %q", cfg.Name, "envdb")
	}
	if cfg.User != "envuser" {
		t.Errorf("User = %q, want %q", cfg.User, "envuser")
	}
	if cfg.MigrateOnStart() {
		t.Error("MigrateOnStart() = true, want false from env")
	}
}

func TestConfig_Finalize_InvalidDuration(t *testing.T) {
	cfg := &database.Config{ConnTimeout: "soon"}

	err := cfg.Finalize(nil)
	if err == nil {
		t.Fatal("Finalize() should fail for invalid conn_timeout")
	}
	if !strings.Contains(err.Error(), "conn_timeout") {
		t.Errorf("error = %v, want mention of conn_timeout", err)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &database.Config{Host: "base", Port: 5432, Name: "basedb"}
	off := false
	overlay := &database.Config{Host: "overlay", Migrate: &off}

	base.Merge(overlay)

	if base.Host != "overlay" {
		t.Errorf("Host = %q, want %q", base.Host, "overlay")
	}
	if base.Name != "basedb" {
		t.Errorf("Name = %q, want %q", base.Name, "basedb")
	}
	if base.MigrateOnStart() {
		t.Error("MigrateOnStart() = true, want false after merge")
	}
}

func TestConfig_Dsn(t *testing.T) {
	cfg := &database.Config{
		Host:     "db",
		Port:     5433,
		Name:     "shop",
		User:     "admin",
		Password: "secret",
		SSLMode:  "require",
	}

	want := "host=db port=5433 dbname=shop user=admin password=secret sslmode=require"
	if got := cfg.Dsn(); got != want {
		t.Errorf("Dsn() = %q, want %q", got, want)
	}
}

func TestConfig_URL_EscapesCredentials(t *testing.T) {
	cfg := &database.Config{
		Host:     "db",
		Port:     5432,
		Name:     "shop",
		User:     "admin",
		Password: "p@ss/word",
		SSLMode:  "disable",
	}

	want := "pgx5://admin:p%40ss%2Fword@db:5432/shop?sslmode=disable"
	if got := cfg.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
