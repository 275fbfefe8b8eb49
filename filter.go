package prompt

import "strings"

// Filter ranks items against a search query.
//
// Matching is case-insensitive. Items whose text starts with the query come
// first, followed by items that only contain it; both groups keep their input
// order and everything else is dropped. An empty query returns the items
// unchanged. The input slice is never modified.
func Filter(items []string, query string) []string {
	return FilterFunc(items, func(s string) string { return s }, query)
}

// FilterFunc is Filter for arbitrary values, using text to obtain the string
// each value is matched on.
func FilterFunc[T any](items []T, text func(T) string, query string) []T {
	if query == "" {
		return append([]T(nil), items...)
	}

	q := strings.ToLower(query)
	var prefixed, contained []T
	for _, item := range items {
		lower := strings.ToLower(text(item))
		switch {
		case strings.HasPrefix(lower, q):
			prefixed = append(prefixed, item)
		case strings.Contains(lower, q):
			contained = append(contained, item)
		}
	}
	return append(prefixed, contained...)
}
