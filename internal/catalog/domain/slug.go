package domain

import "strings"

// Slugify collapses a display name into the canonical slug form used as the
// key throughout quiz weights and the related-aesthetic table: lowercase,
// whitespace runs replaced by single hyphens.
func Slugify(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(value))), "-")
}
