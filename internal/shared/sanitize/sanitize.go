// Package sanitize detects markup in free-text form fields so it can be
// rejected during validation instead of being rewritten after it.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// HasMarkup reports whether the strict policy would change raw, i.e. whether an
// HTML parser reads any part of it as a tag or comment.
// Entities and line endings are normalised on both sides first, since the
// policy re-escapes surviving text and browsers post textareas with CRLF.
func (s *Sanitizer) HasMarkup(raw string) bool {
	if !strings.ContainsRune(raw, '<') {
		return false
	}
	text := newlines.Replace(raw)
	return html.UnescapeString(s.policy.Sanitize(text)) != html.UnescapeString(text)
}
