package model

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a URL slug from a display name: lowercase, whitespace runs
// become hyphens, everything else outside [a-z0-9-] is dropped.
// "Acme Co!" -> "acme-co".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugWhitespace.ReplaceAllString(s, "-")
	return slugDisallowed.ReplaceAllString(s, "")
}
