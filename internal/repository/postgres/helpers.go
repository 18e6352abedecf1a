// internal/repository/postgres/helpers.go
package postgres

import "strings"

// normalizePage clamps pagination inputs to sane bounds.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// sortColumn whitelists sortable columns; anything unrecognized falls back
// to the default. Sort columns are interpolated into SQL and must never come
// from the caller unchecked.
func sortColumn(requested string, allowed map[string]bool, fallback string) string {
	if allowed[requested] {
		return requested
	}
	return fallback
}

func sortDirection(requested string) string {
	if strings.EqualFold(requested, "asc") {
		return "ASC"
	}
	return "DESC"
}
