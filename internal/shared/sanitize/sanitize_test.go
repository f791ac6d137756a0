package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMarkup(t *testing.T) {
	s := New()

	testCases := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"plain text", "I like hiking", false},
		{"spaced comparison", "I think x < y and z > w", false},
		{"heart", "I <3 maps", false},
		{"ampersand", "Tom & Jerry", false},
		{"literal entity", "Tom &amp; Jerry", false},
		{"textarea line endings", "line one\r\nline two", false},
		{"bold tag", "<b>Al</b>", true},
		{"tag-like comparison", "I think x<y and z>w", true},
		{"unterminated tag", "a<bcd", true},
		{"script", `hi<script>alert(1)</script>`, true},
		{"comment", "hi <!-- there -->", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.HasMarkup(tc.raw))
		})
	}
}
