package products_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/showroom/internal/products"
	"github.com/JaimeStill/showroom/pkg/validation"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", validation.Errors{{Field: "name", Rule: "required"}}, http.StatusBadRequest},
		{"not found error", products.ErrNotFound, http.StatusNotFound},
		{"wrapped not found error", fmt.Errorf("failed: %w", products.ErrNotFound), http.StatusNotFound},
		{"duplicate error", products.ErrDuplicate, http.StatusConflict},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := products.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestCommandValidation(t *testing.T) {
	badURL := "not a url"
	goodURL := "https://example.com/sofa.jpg"

	tests := []struct {
		name    string
		cmd     products.CreateCommand
		wantErr bool
	}{
		{"valid", products.CreateCommand{Name: "Sofa", Category: "Living", Price: 10, ImageURL: &goodURL}, false},
		{"free", products.CreateCommand{Name: "Sample", Category: "Living", Price: 0}, false},
		{"missing name", products.CreateCommand{Category: "Living", Price: 10}, true},
		{"missing category", products.CreateCommand{Name: "Sofa", Price: 10}, true},
		{"negative price", products.CreateCommand{Name: "Sofa", Category: "Living", Price: -1}, true},
		{"bad image url", products.CreateCommand{Name: "Sofa", Category: "Living", ImageURL: &badURL}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.cmd)
			if (err != nil) != tt.wantErr {
				t.Errorf("validation.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
