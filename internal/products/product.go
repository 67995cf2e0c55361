package products

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalogue entry.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Featured    bool      `json:"featured"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a product.
// InStock defaults to true when omitted.
type CreateCommand struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Featured    bool    `json:"featured"`
	InStock     *bool   `json:"in_stock"`
}

// UpdateCommand replaces every editable field of a product.
type UpdateCommand struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Featured    bool    `json:"featured"`
	InStock     bool    `json:"in_stock"`
}
