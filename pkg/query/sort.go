package query

import "strings"

// SortField names a view field and its direction.
type SortField struct {
	Field      string
	Descending bool
}

// ParseSortFields parses a comma-separated sort expression such as
// "name,-createdAt". A leading "-" sorts descending. Returns nil when
// nothing usable is present.
func ParseSortFields(s string) []SortField {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if part == "" {
			continue
		}
		fields = append(fields, SortField{Field: part, Descending: desc})
	}
	return fields
}
