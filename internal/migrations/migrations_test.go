package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/JaimeStill/showroom/internal/migrations"
)

func TestFS_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS(), "sql")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", name)
		}
	}

	if len(ups) != 3 {
		t.Errorf("got %d up migrations, want 3", len(ups))
	}
	for version := range ups {
		if !downs[version] {
			t.Errorf("migration %s has no down file", version)
		}
	}
}

func TestFS_CreatesTables(t *testing.T) {
	for file, table := range map[string]string{
		"sql/000001_users.up.sql":     "CREATE TABLE users",
		"sql/000002_products.up.sql":  "CREATE TABLE products",
		"sql/000003_inquiries.up.sql": "CREATE TABLE inquiries",
	} {
		data, err := fs.ReadFile(migrations.FS(), file)
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", file, err)
		}
		if !strings.Contains(string(data), table) {
			t.Errorf("%s missing %q", file, table)
		}
	}
}
