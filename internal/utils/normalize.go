package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeDescription collapses runs of whitespace (spaces, tabs, newlines)
// into single spaces and trims the ends. Imported descriptions are normalized
// this way before dedup matching and before being stored.
func NormalizeDescription(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
