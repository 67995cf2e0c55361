package products

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/showroom/pkg/query"
	"github.com/JaimeStill/showroom/pkg/repository"
)

var projection = query.NewProjectionMap("public", "products", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("category", "Category").
	Project("price", "Price").
	Project("image_url", "ImageURL").
	Project("featured", "Featured").
	Project("in_stock", "InStock").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "Featured", Descending: true},
	{Field: "Name"},
}

func scanProduct(s repository.Scanner) (Product, error) {
	var p Product
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
		&p.ImageURL, &p.Featured, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Filters narrows a product listing.
type Filters struct {
	Category *string
	Featured *bool
	InStock  *bool
}

// FiltersFromQuery reads category, featured, and in_stock from the
// query string. Unparseable booleans are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if c := values.Get("category"); c != "" {
		f.Category = &c
	}
	f.Featured = parseBool(values.Get("featured"))
	f.InStock = parseBool(values.Get("in_stock"))
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Category != nil {
		b.WhereEquals("Category", *f.Category)
	}
	if f.Featured != nil {
		b.WhereEquals("Featured", *f.Featured)
	}
	if f.InStock != nil {
		b.WhereEquals("InStock", *f.InStock)
	}
	return b
}

func parseBool(v string) *bool {
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
