package util

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied text before it is stored
type Sanitizer interface {
	Sanitize(input string) string
}

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer returns a sanitizer that keeps the user generated content
// subset of HTML and drops everything else, scripts included. Bodies are
// returned as JSON, not rendered, so the result carries no HTML entity escaping.
func NewHTMLSanitizer() Sanitizer {
	return htmlSanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns input unchanged when the policy only re-escaped it, and the
// decoded remainder when it removed markup.
func (s htmlSanitizer) Sanitize(input string) string {
	decoded := html.UnescapeString(s.policy.Sanitize(input))
	if decoded == html.UnescapeString(input) {
		return input
	}
	return decoded
}

// NoopSanitizer returns its input unchanged
type NoopSanitizer struct{}

func (NoopSanitizer) Sanitize(input string) string { return input }

// IsBlank reports whether s is empty once surrounding whitespace is removed
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
