// Package inquiries implements the contact form: public submission and
// admin triage by status.
package inquiries

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/showroom/pkg/pagination"
)

// System defines the interface for inquiry management.
type System interface {
	// Submit validates and stores a contact-form submission with status new.
	// Returns ErrUnknownProduct if product_id references no product.
	Submit(ctx context.Context, cmd CreateCommand) (*Inquiry, error)

	// List returns a page of inquiries matching the filter criteria,
	// newest first by default.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Inquiry], error)

	// Find retrieves an inquiry by ID.
	// Returns ErrNotFound if the inquiry does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Inquiry, error)

	// UpdateStatus moves an inquiry to cmd.Status.
	// Returns ErrNotFound if the inquiry does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, cmd UpdateStatusCommand) (*Inquiry, error)

	// Delete removes an inquiry.
	// Returns ErrNotFound if the inquiry does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
