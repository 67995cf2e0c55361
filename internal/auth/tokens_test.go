package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/JaimeStill/showroom/internal/auth"
)

func newTokens(ttl time.Duration) *auth.Tokens {
	return auth.NewTokens(auth.TokenConfig{
		Secret: "test-secret",
		TTL:    ttl,
		Issuer: "showroom",
	})
}

func testUser(role string) *auth.User {
	return &auth.User{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  role,
	}
}

func TestTokens_IssueAndParse(t *testing.T) {
	tokens := newTokens(time.Hour)
	user := testUser(auth.RoleAdmin)

	signed, issued, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if claims.Subject != user.ID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, user.ID)
	}
	if claims.ID == "" || claims.ID != issued.ID {
		t.Errorf("ID = %q, want %q", claims.ID, issued.ID)
	}
	if claims.Issuer != "showroom" {
		t.Errorf("Issuer = %q, want showroom", claims.Issuer)
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}

	id, err := claims.UserID()
	if err != nil || id != user.ID {
		t.Errorf("UserID() = %v, %v; want %v", id, err, user.ID)
	}

	if r := claims.Remaining(); r <= 0 || r > time.Hour {
		t.Errorf("Remaining() = %v, want within (0, 1h]", r)
	}
}

func TestTokens_UniqueIDs(t *testing.T) {
	tokens := newTokens(time.Hour)
	user := testUser(auth.RoleCustomer)

	_, a, _ := tokens.Issue(user)
	_, b, _ := tokens.Issue(user)

	if a.ID == b.ID {
		t.Error("two tokens share a jti")
	}
}

func TestTokens_ParseRejects(t *testing.T) {
	tokens := newTokens(time.Hour)
	user := testUser(auth.RoleCustomer)

	expired, _, _ := newTokens(-time.Minute).Issue(user)
	foreign, _, _ := auth.NewTokens(auth.TokenConfig{Secret: "other", TTL: time.Hour, Issuer: "showroom"}).Issue(user)
	wrongIssuer, _, _ := auth.NewTokens(auth.TokenConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "elsewhere"}).Issue(user)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: user.ID.String(),
		ID:      uuid.NewString(),
		Issuer:  "showroom",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"wrong issuer", wrongIssuer},
		{"alg none", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Parse(tt.token)
			if !errors.Is(err, auth.ErrUnauthorized) {
				t.Errorf("Parse() error = %v, want ErrUnauthorized", err)
			}
		})
	}
}
