package auth

import (
	"github.com/JaimeStill/showroom/pkg/query"
	"github.com/JaimeStill/showroom/pkg/repository"
)

var projection = query.NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("role", "Role").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

type credentials struct {
	User
	PasswordHash string
}

func scanCredentials(s repository.Scanner) (credentials, error) {
	var c credentials
	err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.Role, &c.CreatedAt, &c.UpdatedAt,
		&c.PasswordHash,
	)
	return c, err
}
