package query_test

import (
	"testing"

	"github.com/JaimeStill/showroom/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "products", "p").
		Project("id", "ID").
		Project("name", "Name").
		Project("category", "Category").
		Project("created_at", "CreatedAt")
}

func TestNewProjectionMap(t *testing.T) {
	pm := query.NewProjectionMap("public", "products", "p")

	if pm.Table() != "public.products p" {
		t.Errorf("Table() = %q, want %q", pm.Table(), "public.products p")
	}
}

func TestProjectionMap_Column(t *testing.T) {
	pm := newTestProjection()

	tests := []struct {
		viewName string
		wantCol  string
	}{
		{"ID", "p.id"},
		{"Category", "p.category"},
		{"CreatedAt", "p.created_at"},
		{"Unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.viewName, func(t *testing.T) {
			if col := pm.Column(tt.viewName); col != tt.wantCol {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, col, tt.wantCol)
			}
		})
	}
}

func TestProjectionMap_Lookup(t *testing.T) {
	pm := newTestProjection()

	tests := []struct {
		field   string
		wantCol string
		wantOK  bool
	}{
		{"CreatedAt", "p.created_at", true},
		{"createdAt", "p.created_at", true},
		{"created_at", "p.created_at", true},
		{"name", "p.name", true},
		{"price; DROP TABLE products", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			col, ok := pm.Lookup(tt.field)
			if ok != tt.wantOK || col != tt.wantCol {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.field, col, ok, tt.wantCol, tt.wantOK)
			}
		})
	}
}

func TestProjectionMap_Columns(t *testing.T) {
	pm := newTestProjection()

	want := "p.id, p.name, p.category, p.created_at"
	if got := pm.Columns(); got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}
