package web

// Visibility is the shown/masked state of a password input.
type Visibility bool

func (v *Visibility) Toggle() {
	*v = !*v
}

// InputType is the type attribute the password input renders with.
func (v Visibility) InputType() string {
	if v {
		return "text"
	}
	return "password"
}

// Toggle targets
const (
	TogglePassword        = "password"
	ToggleConfirmPassword = "confirmPassword"
)

// Toggles is the visibility state round-tripped through hidden inputs.
// Toggle names the flag the eye button asked to flip.
type Toggles struct {
	ShowPassword        Visibility `form:"showPassword" json:"showPassword"`
	ShowConfirmPassword Visibility `form:"showConfirmPassword" json:"showConfirmPassword"`
	Toggle              string     `form:"toggle" json:"-"`
}

// Apply flips the requested flag and reports whether the request was a toggle
// rather than a submit.
func (t *Toggles) Apply() bool {
	switch t.Toggle {
	case TogglePassword:
		t.ShowPassword.Toggle()
	case ToggleConfirmPassword:
		t.ShowConfirmPassword.Toggle()
	default:
		return false
	}
	t.Toggle = ""
	return true
}
