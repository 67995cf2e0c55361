package inquiries

import (
	"net/url"
	"slices"
	"strings"

	"github.com/JaimeStill/showroom/pkg/query"
	"github.com/JaimeStill/showroom/pkg/repository"
)

var projection = query.NewProjectionMap("public", "inquiries", "i").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("subject", "Subject").
	Project("message", "Message").
	Project("product_id", "ProductID").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

const returning = "RETURNING id, name, email, phone, subject, message, product_id, status, created_at, updated_at"

func scanInquiry(s repository.Scanner) (Inquiry, error) {
	var i Inquiry
	err := s.Scan(
		&i.ID, &i.Name, &i.Email, &i.Phone, &i.Subject, &i.Message,
		&i.ProductID, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

// Filters narrows an inquiry listing.
type Filters struct {
	Statuses []string
	Email    *string
}

// FiltersFromQuery reads a comma-separated status list and an email
// fragment from the query string. Unknown statuses are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	for s := range strings.SplitSeq(values.Get("status"), ",") {
		if s = strings.TrimSpace(s); ValidStatus(s) && !slices.Contains(f.Statuses, s) {
			f.Statuses = append(f.Statuses, s)
		}
	}
	if e := strings.TrimSpace(values.Get("email")); e != "" {
		f.Email = &e
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	if len(f.Statuses) > 0 {
		statuses := make([]any, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = s
		}
		b.WhereIn("Status", statuses)
	}
	return b.WhereContains("Email", f.Email)
}
