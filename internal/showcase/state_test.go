package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewSignIn, ParseView("signin"))
	assert.Equal(t, ViewSignUp, ParseView("signup"))
	assert.Equal(t, ViewLogIn, ParseView("login"))
	assert.Equal(t, ViewSignIn, ParseView(""))
	assert.Equal(t, ViewSignIn, ParseView("admin"))
}

func TestState_SubmitEmailMovesToSignUp(t *testing.T) {
	// Given
	state := NewState()

	// When
	state.SubmitEmail("alice@example.com")

	// Then
	assert.Equal(t, ViewSignUp, state.View)
	assert.Equal(t, "alice@example.com", state.Email)
}

func TestState_BackKeepsEmail(t *testing.T) {
	state := NewState()
	state.SubmitEmail("alice@example.com")

	state.Back()

	assert.Equal(t, ViewSignIn, state.View)
	assert.Equal(t, "alice@example.com", state.Email)
}

func TestState_SelectClearsEmail(t *testing.T) {
	state := NewState()
	state.SubmitEmail("alice@example.com")

	state.Select(ViewLogIn)

	assert.Equal(t, ViewLogIn, state.View)
	assert.Empty(t, state.Email)
}

func TestNamePrefill(t *testing.T) {
	assert.Equal(t, "alice", NamePrefill("alice@example.com"))
	assert.Equal(t, "", NamePrefill(""))
	assert.Equal(t, "bob", NamePrefill("bob"))
}

func TestDisplayName(t *testing.T) {
	testCases := []struct {
		email   string
		name    string
		initial string
	}{
		{"alice@example.com", "Alice", "A"},
		{"élodie@example.fr", "Élodie", "É"},
		{"", "User", "U"},
		{"@example.com", "User", "U"},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.name, DisplayName(tc.email))
			assert.Equal(t, tc.initial, Initial(tc.email))
		})
	}
}
