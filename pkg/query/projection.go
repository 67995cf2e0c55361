package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names onto qualified table columns so
// repositories can build SQL from the names their API exposes.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	byView  map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byView: make(map[string]string),
	}
}

// Project registers column under viewName. Projection order defines
// the SELECT column order.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.byView[viewName] = qualified
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for viewName, or viewName itself
// when it was never projected.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.byView[viewName]; ok {
		return col
	}
	return viewName
}

// Lookup resolves a client-supplied field name to a projected column.
// View names match case-insensitively, and raw column names match too,
// so "createdAt", "CreatedAt" and "created_at" all resolve.
func (p *ProjectionMap) Lookup(field string) (string, bool) {
	if col, ok := p.byView[field]; ok {
		return col, true
	}
	for view, col := range p.byView {
		if strings.EqualFold(view, field) || col == p.alias+"."+field {
			return col, true
		}
	}
	return "", false
}

// Columns returns the comma-separated SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}
