package inquiries

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/showroom/pkg/validation"
)

// Domain errors for the inquiries system.
var (
	// ErrNotFound indicates the requested inquiry does not exist.
	ErrNotFound = errors.New("inquiry not found")

	// ErrUnknownProduct indicates product_id does not reference a product.
	ErrUnknownProduct = errors.New("product_id does not reference an existing product")
)

// MapHTTPStatus maps inquiry errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownProduct):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
