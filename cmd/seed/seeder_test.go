package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListSeeders(t *testing.T) {
	got := listSeeders()
	if len(got) != 2 {
		t.Fatalf("len(listSeeders()) = %d, want 2", len(got))
	}
	if got[0].Name() != "admin" || got[1].Name() != "products" {
		t.Errorf("order = [%s %s], want [admin products]", got[0].Name(), got[1].Name())
	}
}

func TestProductSeeder_EmbeddedData(t *testing.T) {
	data, err := (&ProductSeeder{}).loadSeedData()
	if err != nil {
		t.Fatalf("loadSeedData() failed: %v", err)
	}
	if len(data.Products) == 0 {
		t.Fatal("embedded seed has no products")
	}
}

func TestProductSeeder_ExternalFileValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`{"products":[{"name":"","category":"x","price":1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &ProductSeeder{}
	s.SetFile(path)
	if _, err := s.loadSeedData(); err == nil {
		t.Error("loadSeedData() accepted a product without a name")
	}
}

func TestAdminFromEnv(t *testing.T) {
	t.Setenv(EnvSeedAdminEmail, " Admin@Example.com ")
	t.Setenv(EnvSeedAdminPassword, "correct-horse")

	cmd, err := adminFromEnv()
	if err != nil {
		t.Fatalf("adminFromEnv() failed: %v", err)
	}
	if cmd.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", cmd.Email)
	}
	if cmd.Name != "Administrator" {
		t.Errorf("Name = %q, want Administrator", cmd.Name)
	}

	t.Setenv(EnvSeedAdminPassword, "short")
	if _, err := adminFromEnv(); err == nil {
		t.Error("adminFromEnv() accepted a short password")
	}
}

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		want    string
		wantErr bool
	}{
		{"postgres scheme", "postgres://u:p@localhost:5432/showroom?sslmode=disable", "pgx5://u:p@localhost:5432/showroom?sslmode=disable", false},
		{"postgresql scheme", "postgresql://u@db/showroom", "pgx5://u@db/showroom", false},
		{"already pgx5", "pgx5://u@db/showroom", "pgx5://u@db/showroom", false},
		{"keyword dsn", "host=localhost dbname=showroom", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := migrationURL(tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Errorf("migrationURL(%q) = %q, want error", tt.dsn, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("migrationURL(%q) failed: %v", tt.dsn, err)
			}
			if got != tt.want {
				t.Errorf("migrationURL(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}
