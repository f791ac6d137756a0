package userreg

import (
	"fmt"
	"slices"

	"github.com/funfun03/form-showcase/internal/shared/validator"
	playground "github.com/go-playground/validator/v10"
)

var Genders = []string{"male", "female", "other"}

// Countries offered by the country select, in display order.
var Countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Australia",
	"Germany",
	"France",
	"Japan",
	"South Korea",
	"India",
	"China",
	"Brazil",
	"Mexico",
}

type Hobby struct {
	Value string
	Label string
}

var Hobbies = []Hobby{
	{Value: "reading", Label: "Reading"},
	{Value: "traveling", Label: "Traveling"},
	{Value: "gaming", Label: "Gaming"},
}

const BioLimit = 300

// ValidateCountry accepts a name from Countries. oneof cannot express
// values with spaces, hence the dedicated tag.
func ValidateCountry(fl playground.FieldLevel) bool {
	return slices.Contains(Countries, fl.Field().String())
}

// RegisterValidators registers the user registration validators
func RegisterValidators() error {
	v, err := validator.GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	if err := v.RegisterValidation("country", ValidateCountry); err != nil {
		return fmt.Errorf("register country validator: %w", err)
	}
	return nil
}
