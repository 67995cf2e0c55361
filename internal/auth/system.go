// Package auth implements customer and admin accounts: registration,
// password login, bearer tokens, and logout via token revocation.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for account management and token
// verification.
type System interface {
	// Register creates a customer account and opens a session for it.
	// Returns ErrDuplicate if the email is already registered.
	Register(ctx context.Context, cmd RegisterCommand) (*Session, error)

	// Login verifies credentials and opens a session.
	// Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, cmd LoginCommand) (*Session, error)

	// Find retrieves a user by ID.
	// Returns ErrNotFound if the user does not exist.
	Find(ctx context.Context, id uuid.UUID) (*User, error)

	// Authenticate verifies a bearer token and returns its claims.
	// Returns ErrUnauthorized for invalid tokens and ErrTokenRevoked
	// for tokens invalidated by Logout.
	Authenticate(ctx context.Context, token string) (*Claims, error)

	// Logout revokes the token described by claims for the rest of its
	// lifetime.
	Logout(ctx context.Context, claims *Claims) error
}
