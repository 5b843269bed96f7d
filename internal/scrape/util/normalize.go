package util

import "strings"

// NormalizeName turns a free-text company name into a domain token: lowercase
// ASCII letters and digits only. Everything else is dropped, not replaced.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
