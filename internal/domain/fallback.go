package domain

import "strings"

// FirstNonEmpty tries accessors in order and returns the first non-blank result.
// Order matters: records with inconsistent schemas depend on it.
func FirstNonEmpty[T any](v T, accessors ...func(T) string) string {
	for _, get := range accessors {
		if s := strings.TrimSpace(get(v)); s != "" {
			return s
		}
	}
	return ""
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
