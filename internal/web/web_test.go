package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility_ToggleTwiceRestoresMasked(t *testing.T) {
	var v Visibility
	require.Equal(t, "password", v.InputType())

	v.Toggle()
	assert.Equal(t, "text", v.InputType())

	v.Toggle()
	assert.Equal(t, "password", v.InputType())
}

func TestToggles_Apply(t *testing.T) {
	toggles := Toggles{Toggle: TogglePassword}

	assert.True(t, toggles.Apply())
	assert.True(t, bool(toggles.ShowPassword))
	assert.False(t, bool(toggles.ShowConfirmPassword))
	assert.Empty(t, toggles.Toggle)

	toggles.Toggle = ToggleConfirmPassword
	assert.True(t, toggles.Apply())
	assert.True(t, bool(toggles.ShowConfirmPassword))

	toggles.Toggle = TogglePassword
	assert.True(t, toggles.Apply())
	assert.False(t, bool(toggles.ShowPassword))
}

func TestToggles_ApplyWithoutTarget(t *testing.T) {
	toggles := Toggles{ShowPassword: true}

	assert.False(t, toggles.Apply())
	assert.True(t, bool(toggles.ShowPassword))

	toggles.Toggle = "bogus"
	assert.False(t, toggles.Apply())
}

func TestNavVisible(t *testing.T) {
	const viewport = 800

	testCases := []struct {
		name string
		rect Rect
		want bool
	}{
		{"fully inside", Rect{Top: 100, Bottom: 600}, true},
		{"partly scrolled past the top", Rect{Top: -500, Bottom: 10}, true},
		{"scrolled out above", Rect{Top: -900, Bottom: -1}, false},
		{"bottom exactly at viewport top", Rect{Top: -600, Bottom: 0}, false},
		{"below the fold", Rect{Top: 800, Bottom: 1400}, false},
		{"peeking from below", Rect{Top: 799, Bottom: 1400}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NavVisible(tc.rect, viewport))
		})
	}
}

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"showcase", "register", "login", "user-registration", "accepted"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "accepted", AcceptedPage{
		PageData:  PageData{Title: "Done"},
		Heading:   "All set",
		ReceiptID: "r-1",
	}))
	assert.Contains(t, buf.String(), "r-1")
}
