package stubapi

import (
	"fmt"
	"strings"
	"unicode"
)

// slugify reduces a display name to a URL-safe slug: lowercase, runs of
// non-alphanumerics collapsed to single dashes, trimmed.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// uniqueSlug appends -2, -3, ... until taken reports the slug free.
func uniqueSlug(base string, taken func(slug string) bool) string {
	if base == "" {
		base = "untitled"
	}
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
