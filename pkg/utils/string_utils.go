package utils

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// SanitizeName lowercases a display name and collapses internal whitespace to
// underscores, producing the form embedded in generated receipt file names.
func SanitizeName(name string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}
