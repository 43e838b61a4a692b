// Package views holds the pure helpers behind the dashboard pages: text
// filtering, tab partitions, score aggregates, and the shared live-or-fixture
// loading machinery. Nothing in here performs I/O on its own.
package views

import "strings"

// MatchesQuery reports whether any field contains query, case-insensitive.
// An empty query matches everything. The query is matched verbatim, spaces
// included.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(query)
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	if keep == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// CountBy returns how many items satisfy the predicate.
func CountBy[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}
