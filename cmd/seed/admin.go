package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/JaimeStill/showroom/internal/auth"
	"github.com/JaimeStill/showroom/pkg/validation"
)

const (
	EnvSeedAdminEmail    = "SEED_ADMIN_EMAIL"
	EnvSeedAdminPassword = "SEED_ADMIN_PASSWORD"
	EnvSeedAdminName     = "SEED_ADMIN_NAME"
)

func init() {
	registerSeeder(&AdminSeeder{})
}

// AdminSeeder creates or resets the admin account named by the
// SEED_ADMIN_* environment variables.
type AdminSeeder struct{}

func (s *AdminSeeder) Name() string {
	return "admin"
}

func (s *AdminSeeder) Description() string {
	return fmt.Sprintf("Creates the admin account from %s and %s", EnvSeedAdminEmail, EnvSeedAdminPassword)
}

// Seed upserts the admin so re-running it rotates the password and
// promotes an existing customer with the same email.
func (s *AdminSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	cmd, err := adminFromEnv()
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ((LOWER(email))) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			updated_at = NOW()`

	_, err = tx.ExecContext(ctx, query, cmd.Name, cmd.Email, hash, auth.RoleAdmin)
	return err
}

func adminFromEnv() (auth.RegisterCommand, error) {
	cmd := auth.RegisterCommand{
		Name:     os.Getenv(EnvSeedAdminName),
		Email:    auth.NormalizeEmail(os.Getenv(EnvSeedAdminEmail)),
		Password: os.Getenv(EnvSeedAdminPassword),
	}
	if cmd.Name == "" {
		cmd.Name = "Administrator"
	}
	if err := validation.Struct(cmd); err != nil {
		return cmd, fmt.Errorf("admin seed (set %s and %s): %w", EnvSeedAdminEmail, EnvSeedAdminPassword, err)
	}
	return cmd, nil
}
