package login

import (
	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/funfun03/form-showcase/internal/web"
)

type LoginRequest struct {
	Email      string `form:"email" json:"email" binding:"required,email"`
	Password   string `form:"password" json:"password" binding:"required,min=8,hasletter,nospace"`
	RememberMe bool   `form:"rememberMe" json:"rememberMe"`
}

var loginMessages = validator.Messages{
	"email.required":     "Email is required",
	"email.email":        "Invalid email",
	"password.required":  "Password is required",
	"password.min":       "Password must be at least 8 characters",
	"password.hasletter": "Password must contain at least one letter",
	"password.nospace":   "Password cannot contain spaces",
}

type page struct {
	web.PageData
	Input   LoginRequest
	Toggles web.Toggles
	Errors  validator.FieldErrors
}

func newPage(input LoginRequest, toggles web.Toggles) page {
	return page{
		PageData: web.PageData{Title: "Login | Grovia", Page: "login"},
		Input:    input,
		Toggles:  toggles,
	}
}
