// Package main provides the seed command for populating the database with
// initial or sample data. It supports multiple seeders that can be run
// individually or together within a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"github.com/JaimeStill/showroom/pkg/repository"
)

// Seeder defines the interface for database seeders.
// Each seeder is responsible for populating a specific domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed executes the seeding logic within the provided transaction.
	// The transaction allows all-or-nothing semantics across multiple seeders.
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

// getSeeder retrieves a seeder by name from the registry.
func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, name := range slices.Sorted(maps.Keys(seeders)) {
		result = append(result, seeders[name])
	}
	return result
}

// runSeeder executes a single seeder by name within a transaction.
func runSeeder(ctx context.Context, db *sql.DB, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}

	_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
		if err := seeder.Seed(ctx, tx); err != nil {
			return struct{}{}, fmt.Errorf("seed %s: %w", name, err)
		}
		return struct{}{}, nil
	})
	return err
}

// runAllSeeders executes every registered seeder, in name order, within
// a single transaction. If any seeder fails, nothing is committed.
func runAllSeeders(ctx context.Context, db *sql.DB) error {
	_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
		for _, seeder := range listSeeders() {
			if err := seeder.Seed(ctx, tx); err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", seeder.Name(), err)
			}
		}
		return struct{}{}, nil
	})
	return err
}
