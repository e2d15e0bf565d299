package store

import "strings"

// ContainsFold reports whether field contains q, case-insensitively.
// An empty q matches any value.
func ContainsFold(field, q string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(q))
}

// OptContainsFold is ContainsFold for optional fields: a nil or empty field
// never matches, regardless of q.
func OptContainsFold(field *string, q string) bool {
	if field == nil || *field == "" {
		return false
	}
	return ContainsFold(*field, q)
}
