package registration

import (
	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/funfun03/form-showcase/internal/web"
)

type RegisterRequest struct {
	FirstName       string `form:"firstName" json:"firstName" binding:"required,min=2,nomarkup"`
	LastName        string `form:"lastName" json:"lastName" binding:"required,min=2,nomarkup"`
	Phone           string `form:"phone" json:"phone" binding:"required,phone"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required,min=6,maxbytes=72"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" binding:"required,eqfield=Password"`
	WantEmails      bool   `form:"wantEmails" json:"wantEmails"`
	AgreeTerms      bool   `form:"agreeTerms" json:"agreeTerms" binding:"required"`
}

// CanSubmit gates the Create Account button on the terms checkbox.
func (r RegisterRequest) CanSubmit() bool {
	return r.AgreeTerms
}

var registerMessages = validator.Messages{
	"firstName.required":       "First name is required",
	"firstName.min":            "First name must be at least 2 characters",
	"firstName.nomarkup":       "First name cannot contain HTML markup",
	"lastName.required":        "Last name is required",
	"lastName.min":             "Last name must be at least 2 characters",
	"lastName.nomarkup":        "Last name cannot contain HTML markup",
	"phone.required":           "Phone number is required",
	"phone.phone":              "Phone number is not valid",
	"email.required":           "Email is required",
	"email.email":              "Invalid email",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"password.maxbytes":        "Password cannot exceed 72 bytes",
	"confirmPassword.required": "Confirm password is required",
	"confirmPassword.eqfield":  "Passwords must match",
	"agreeTerms":               "You must accept the terms and conditions",
}

type page struct {
	web.PageData
	Input     RegisterRequest
	Toggles   web.Toggles
	Errors    validator.FieldErrors
	CanSubmit bool
}

func newPage(input RegisterRequest, toggles web.Toggles) page {
	return page{
		PageData:  web.PageData{Title: "Register | Lottery Display", Page: "register"},
		Input:     input,
		Toggles:   toggles,
		CanSubmit: input.CanSubmit(),
	}
}
