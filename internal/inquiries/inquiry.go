package inquiries

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Inquiry lifecycle states.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusResponded = "responded"
	StatusClosed    = "closed"
)

// Statuses lists every valid inquiry status in lifecycle order.
var Statuses = []string{StatusNew, StatusRead, StatusResponded, StatusClosed}

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	return slices.Contains(Statuses, s)
}

// Inquiry is a contact-form submission.
type Inquiry struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	ProductID *uuid.UUID `json:"product_id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateCommand is the contact form. Every field is a string so the
// same struct decodes from JSON and URL-encoded bodies.
type CreateCommand struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=50"`
	Subject   string `json:"subject" validate:"max=200"`
	Message   string `json:"message" validate:"required,max=5000"`
	ProductID string `json:"product_id" validate:"omitempty,uuid"`
}

// UpdateStatusCommand moves an inquiry to a new status.
type UpdateStatusCommand struct {
	Status string `json:"status" validate:"required,oneof=new read responded closed"`
}
