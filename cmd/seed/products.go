package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/showroom/internal/products"
	"github.com/JaimeStill/showroom/pkg/validation"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&ProductSeeder{})
}

// ProductSeedData represents the JSON structure for product seed files.
type ProductSeedData struct {
	Products []products.CreateCommand `json:"products"`
}

// ProductSeeder inserts sample catalogue rows from an embedded file or
// an external file path.
type ProductSeeder struct {
	file string
}

func (s *ProductSeeder) Name() string {
	return "products"
}

func (s *ProductSeeder) Description() string {
	return "Seeds sample catalogue products"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ProductSeeder) SetFile(path string) {
	s.file = path
}

// Seed saves every product, updating rows that already exist by name.
func (s *ProductSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO products (name, description, category, price, image_url, featured, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			featured = EXCLUDED.featured,
			in_stock = EXCLUDED.in_stock,
			updated_at = NOW()`

	for _, p := range data.Products {
		inStock := p.InStock == nil || *p.InStock
		if _, err := tx.ExecContext(ctx, query, p.Name, p.Description, p.Category, p.Price, p.ImageURL, p.Featured, inStock); err != nil {
			return fmt.Errorf("save product %s: %w", p.Name, err)
		}
	}
	return nil
}

func (s *ProductSeeder) loadSeedData() (*ProductSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/products.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data ProductSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	for _, p := range data.Products {
		if err := validation.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product %q: %w", p.Name, err)
		}
	}
	return &data, nil
}
