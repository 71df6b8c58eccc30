// Package keys implements the identifier normalization used to match form
// fields to their error-display elements. Field identifiers and slot labels
// are authored by hand in markup, so matching has to survive case and
// separator differences ("Last Name", "last-name", "last_name").
package keys

import "strings"

// Normalize canonicalizes a raw identifier for fuzzy matching: the input is
// lowercased and every character outside [a-z0-9] is removed. Empty input
// yields the empty string. Normalize is pure, total, and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	lowered := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
