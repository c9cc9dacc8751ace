// Package naming derives deterministic, filesystem-safe output file
// names from the identity name and an optional context label.
package naming

import (
	"strings"
	"time"
)

// timestampLayout is the sortable, fixed-width timestamp token.
const timestampLayout = "20060102_150405"

// Extension is the output document extension.
const Extension = ".docx"

// fallbackName is used when sanitizing leaves nothing of the input.
const fallbackName = "cv"

// Sanitize makes a string filesystem-safe: any character outside
// [A-Za-z0-9._-] becomes an underscore, runs of underscores collapse to
// one, and leading/trailing underscores are trimmed.
func Sanitize(s string) string {
	var sb strings.Builder
	lastUnderscore := false
	for _, r := range s {
		safe := r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' ||
			r == '.' || r == '-'
		if safe {
			sb.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(sb.String(), "_")
}

// Filename builds the output file name from a name (typically the
// configured prefix or the identity name), an optional context label,
// and the timestamp flag. The timestamp token sorts lexicographically.
//
// Identical inputs within the same second yield identical names;
// callers needing strict uniqueness must add a discriminator label.
func Filename(name, label string, includeTimestamp bool, now time.Time) string {
	parts := []string{}
	if n := Sanitize(name); n != "" {
		parts = append(parts, n)
	}
	if l := Sanitize(label); l != "" {
		parts = append(parts, l)
	}
	if len(parts) == 0 {
		parts = append(parts, fallbackName)
	}
	if includeTimestamp {
		parts = append(parts, now.Format(timestampLayout))
	}
	return strings.Join(parts, "_") + Extension
}
