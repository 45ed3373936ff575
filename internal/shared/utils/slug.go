package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe slug from a human-readable name:
// lowercase, every run of non-alphanumeric characters becomes a single
// hyphen, leading/trailing hyphens are trimmed.
//
// "Kopi Arabika Gayo!!" -> "kopi-arabika-gayo"
//
// Returns "" when the input contains no alphanumeric characters at all;
// callers treat that as a validation failure.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlnumRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}
