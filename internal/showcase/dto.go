package showcase

import (
	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/funfun03/form-showcase/internal/web"
)

const (
	actionBack           = "back"
	actionTogglePassword = "toggle-password"
	actionContinue       = "continue"
)

type SignInRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

var signInMessages = validator.Messages{
	"email.required": "Email là bắt buộc",
	"email.email":    "Email không hợp lệ",
}

type SignInResponse struct {
	View  View   `json:"view"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// viewForm is what the sign-up and log-in views post back.
type viewForm struct {
	Action       string         `form:"action"`
	Email        string         `form:"email"`
	ShowPassword web.Visibility `form:"showPassword"`
}

type SignUpRequest struct {
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
	Name     string `form:"name" json:"name" binding:"required,max=50,nomarkup"`
	Password string `form:"password" json:"password" binding:"required,maxbytes=72"`
}

var signUpMessages = validator.Messages{
	"email":             "Email không hợp lệ",
	"name.required":     "Name is required",
	"name.max":          "Name cannot exceed 50 characters",
	"name.nomarkup":     "Name cannot contain HTML markup",
	"password.required": "Password is required",
	"password.maxbytes": "Password cannot exceed 72 bytes",
}

type LogInRequest struct {
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

var logInMessages = validator.Messages{
	"email":             "Email không hợp lệ",
	"password.required": "Password is required",
}

type NavVisibilityRequest struct {
	Top            float64 `json:"top"`
	Bottom         float64 `json:"bottom" binding:"gtefield=Top"`
	ViewportHeight float64 `json:"viewportHeight" binding:"required,gt=0"`
}

type NavVisibilityResponse struct {
	Visible bool `json:"visible"`
}

type navItem struct {
	View   View
	Label  string
	Active bool
}

type page struct {
	web.PageData
	State       State
	Nav         []navItem
	Name        string
	Password    string
	DisplayName string
	Initial     string
	Errors      validator.FieldErrors
}

func newPage(state State) page {
	nav := make([]navItem, 0, len(Views))
	for _, v := range Views {
		nav = append(nav, navItem{View: v, Label: v.Label(), Active: v == state.View})
	}

	return page{
		PageData:    web.PageData{Title: "Form showcase", Page: string(state.View)},
		State:       state,
		Nav:         nav,
		Name:        NamePrefill(state.Email),
		DisplayName: DisplayName(state.Email),
		Initial:     Initial(state.Email),
	}
}
