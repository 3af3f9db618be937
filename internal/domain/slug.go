package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a title: lowercased, characters outside
// [a-z0-9 -] stripped, whitespace runs collapsed to single hyphens, hyphen
// runs collapsed, leading and trailing hyphens trimmed. Slugs are never
// edited independently; every title-bearing mutation recomputes them.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
