package userreg

import (
	"mime/multipart"

	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/funfun03/form-showcase/internal/web"
)

type UserRegistrationRequest struct {
	FullName        string                `form:"fullName" json:"fullName" binding:"required,min=3,nomarkup"`
	Email           string                `form:"email" json:"email" binding:"required,email"`
	Password        string                `form:"password" json:"password" binding:"required,min=8,maxbytes=72,hasletter,hasdigit"`
	ConfirmPassword string                `form:"confirmPassword" json:"confirmPassword" binding:"required,eqfield=Password"`
	PhoneNumber     string                `form:"phoneNumber" json:"phoneNumber" binding:"required,phonedigits"`
	Gender          string                `form:"gender" json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth     string                `form:"dateOfBirth" json:"dateOfBirth" binding:"required,datetime=2006-01-02,adult"`
	Country         string                `form:"country" json:"country" binding:"required,country"`
	Hobbies         []string              `form:"hobbies" json:"hobbies" binding:"min=1,dive,oneof=reading traveling gaming"`
	ProfilePicture  *multipart.FileHeader `form:"profilePicture" json:"-"`
	Bio             string                `form:"bio" json:"bio" binding:"max=300,nomarkup"`
}

var userRegistrationMessages = validator.Messages{
	"fullName.required":        "Full Name is required",
	"fullName.min":             "Full Name must be at least 3 characters",
	"fullName.nomarkup":        "Full Name cannot contain HTML markup",
	"email.required":           "Email is required",
	"email.email":              "Invalid email address",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 8 characters",
	"password.maxbytes":        "Password cannot exceed 72 bytes",
	"password.hasletter":       "Password must contain at least one letter",
	"password.hasdigit":        "Password must contain at least one number",
	"confirmPassword.required": "Confirm Password is required",
	"confirmPassword.eqfield":  "Passwords must match",
	"phoneNumber.required":     "Phone Number is required",
	"phoneNumber.phonedigits":  "Phone number must be at least 10 digits",
	"gender":                   "Please select a gender",
	"dateOfBirth.required":     "Date of Birth is required",
	"dateOfBirth.adult":        "You must be at least 18 years old",
	"country":                  "Please select a country",
	"hobbies.min":              "Select at least one hobby",
	"hobbies.oneof":            "Unknown hobby",
	"bio.max":                  "Bio cannot exceed 300 characters",
	"bio.nomarkup":             "Bio cannot contain HTML markup",
	"profilePicture":           "Only .jpg, .jpeg, or .png files are allowed",
}

type page struct {
	web.PageData
	Input     UserRegistrationRequest
	Toggles   web.Toggles
	Errors    validator.FieldErrors
	Genders   []string
	Countries []string
	Hobbies   []Hobby
	BioLimit  int
}

func newPage(input UserRegistrationRequest, toggles web.Toggles) page {
	return page{
		PageData:  web.PageData{Title: "User Registration", Page: "user-registration"},
		Input:     input,
		Toggles:   toggles,
		Genders:   Genders,
		Countries: Countries,
		Hobbies:   Hobbies,
		BioLimit:  BioLimit,
	}
}
