// Package products implements the product catalogue: public browsing
// with filters and search, and admin-only maintenance.
package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/showroom/pkg/pagination"
)

// System defines the interface for catalogue management.
type System interface {
	// List returns a page of products matching the filter criteria.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error)

	// Find retrieves a product by ID.
	// Returns ErrNotFound if the product does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Product, error)

	// Create validates and stores a new product.
	// Returns ErrDuplicate if a product with the same name exists.
	Create(ctx context.Context, cmd CreateCommand) (*Product, error)

	// Update replaces a product's fields.
	// Returns ErrNotFound if the product does not exist.
	// Returns ErrDuplicate if the new name conflicts with another product.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Product, error)

	// Delete removes a product.
	// Returns ErrNotFound if the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
