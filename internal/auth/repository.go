package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/showroom/pkg/query"
	"github.com/JaimeStill/showroom/pkg/repository"
	"github.com/JaimeStill/showroom/pkg/validation"
)

// HashCost is the bcrypt cost used for new password hashes.
var HashCost = bcrypt.DefaultCost

type authRepo struct {
	db          *sql.DB
	tokens      *Tokens
	revocations Revocations
	logger      *slog.Logger
}

// New creates the auth system backed by db. Revocations may be the
// no-op store when no cache is configured.
func New(db *sql.DB, tokens *Tokens, revocations Revocations, logger *slog.Logger) System {
	return &authRepo{
		db:          db,
		tokens:      tokens,
		revocations: revocations,
		logger:      logger.With("system", "auth"),
	}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *authRepo) Register(ctx context.Context, cmd RegisterCommand) (*Session, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = NormalizeEmail(cmd.Email)
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	hash, err := HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, role, created_at, updated_at`

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Email, hash, RoleCustomer}, scanUser)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID, "email", u.Email)
	return r.session(&u)
}

func (r *authRepo) Login(ctx context.Context, cmd LoginCommand) (*Session, error) {
	cmd.Email = NormalizeEmail(cmd.Email)
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(
		"SELECT %s, u.password_hash FROM %s WHERE LOWER(u.email) = $1",
		projection.Columns(), projection.Table(),
	)

	c, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Email}, scanCredentials)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(cmd.Password)); err != nil {
		r.logger.Warn("login rejected", "email", cmd.Email)
		return nil, ErrInvalidCredentials
	}

	r.logger.Info("user logged in", "id", c.ID)
	return r.session(&c.User)
}

func (r *authRepo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *authRepo) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := r.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := r.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (r *authRepo) Logout(ctx context.Context, claims *Claims) error {
	if err := r.revocations.Revoke(ctx, claims.ID, claims.Remaining()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	r.logger.Info("user logged out", "id", claims.Subject)
	return nil
}

func (r *authRepo) session(u *User) (*Session, error) {
	token, claims, err := r.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      u,
	}, nil
}
