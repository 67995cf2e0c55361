package products

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/showroom/pkg/validation"
)

// Domain errors for the products system.
var (
	// ErrNotFound indicates the requested product does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrDuplicate indicates a product with the same name already exists.
	ErrDuplicate = errors.New("product name already exists")
)

// MapHTTPStatus maps product errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
