// Package parsing holds text cleanup helpers shared by every pipeline stage.
package parsing

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanArticleText collapses all whitespace runs into single spaces and trims
// both ends. Idempotent; empty input yields empty output.
func CleanArticleText(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
}
