package util

import (
	"net/url"
	"strings"
)

// IsAbsolute reports whether href is used as-is rather than joined onto a base.
func IsAbsolute(href string) bool {
	return strings.HasPrefix(strings.ToLower(href), "http")
}

// ResolveHref returns href when it is absolute, otherwise base and href joined
// by exactly one slash. This is plain concatenation: "../", query-only and
// scheme-relative hrefs are not resolved.
func ResolveHref(base, href string) string {
	if IsAbsolute(href) {
		return href
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(href, "/")
}

// HostOf returns the lowercased host of raw, or "" when it has none.
func HostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
