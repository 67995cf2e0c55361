package auth

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/showroom/pkg/validation"
)

// Domain errors for the auth system.
var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate indicates an account with the same email already exists.
	ErrDuplicate = errors.New("email already registered")

	// ErrInvalidCredentials indicates the email or password did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized indicates a missing, malformed, or expired token.
	ErrUnauthorized = errors.New("authentication required")

	// ErrTokenRevoked indicates the token was invalidated by logout.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrForbidden indicates the caller lacks the required role.
	ErrForbidden = errors.New("admin access required")
)

// MapHTTPStatus maps auth errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
