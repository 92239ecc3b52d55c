package cache

import "strings"

// normalizeKey lowercases and trims so "ACME " and "acme" share a key.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
