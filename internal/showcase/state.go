package showcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funfun03/form-showcase/internal/web"
)

// View is the discriminant selecting which showcase form is displayed.
type View string

const (
	ViewSignIn View = "signin"
	ViewSignUp View = "signup"
	ViewLogIn  View = "login"
)

// Views in navigation order.
var Views = []View{ViewSignIn, ViewSignUp, ViewLogIn}

var viewLabels = map[View]string{
	ViewSignIn: "Sign In (Hi!)",
	ViewSignUp: "Sign Up",
	ViewLogIn:  "Log In",
}

// ParseView falls back to the sign-in view for unknown values.
func ParseView(s string) View {
	switch v := View(s); v {
	case ViewSignIn, ViewSignUp, ViewLogIn:
		return v
	default:
		return ViewSignIn
	}
}

func (v View) Label() string {
	return viewLabels[v]
}

// State is everything the showcase parent holds between renders.
type State struct {
	View         View
	Email        string
	ShowPassword web.Visibility
}

func NewState() State {
	return State{View: ViewSignIn}
}

// SubmitEmail threads an accepted sign-in email into the sign-up view.
func (s *State) SubmitEmail(email string) {
	s.Email = email
	s.View = ViewSignUp
}

// Back returns to sign-in. The carried email is kept.
func (s *State) Back() {
	s.View = ViewSignIn
}

// Select is the navigation bar: it switches view and forgets the email.
func (s *State) Select(v View) {
	s.View = v
	s.Email = ""
}

// NamePrefill is the sign-up name default, the email's local part.
func NamePrefill(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// DisplayName greets the user on the log-in view.
func DisplayName(email string) string {
	local := NamePrefill(email)
	if local == "" {
		return "User"
	}
	r, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(r)) + local[size:]
}

// Initial is the avatar letter shown next to the display name.
func Initial(email string) string {
	r, _ := utf8.DecodeRuneInString(DisplayName(email))
	return string(r)
}
