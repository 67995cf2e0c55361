package main

import (
	"fmt"
	"net/url"
)

// migrationURL rewrites a postgres URL DSN into the pgx5 scheme that
// golang-migrate's pgx driver registers. Keyword/value DSNs carry no
// scheme and are rejected.
func migrationURL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql", "pgx5":
		u.Scheme = "pgx5"
		return u.String(), nil
	default:
		return "", fmt.Errorf("migrations need a postgres:// URL dsn, got scheme %q", u.Scheme)
	}
}
