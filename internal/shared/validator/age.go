package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DateLayout is the wire format of date inputs (HTML <input type="date">)
	DateLayout = "2006-01-02"

	AdultAge = 18
)

// now is swapped in tests.
var now = time.Now

// Age returns the number of whole years between birth and on, counting a
// year only once its birthday has been reached.
func Age(birth, on time.Time) int {
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}

func IsAdult(birth, on time.Time) bool {
	return Age(birth, on) >= AdultAge
}

// ValidateAdult accepts a DateLayout date of birth at least AdultAge years ago
func ValidateAdult(fl validator.FieldLevel) bool {
	birth, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	return IsAdult(birth, now())
}
