package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/funfun03/form-showcase/internal/shared/sanitize"
	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches a bare 10 to 15 digit phone number
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)

	// phoneDigitsRegex matches at least 10 digits with no upper bound
	phoneDigitsRegex = regexp.MustCompile(`^[0-9]{10,}$`)
)

// ValidatePhone validates a phone number of 10 to 15 digits
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// ValidatePhoneDigits validates a phone number of at least 10 digits
func ValidatePhoneDigits(fl validator.FieldLevel) bool {
	return phoneDigitsRegex.MatchString(fl.Field().String())
}

func ValidateHasLetter(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), isASCIILetter) >= 0
}

func ValidateHasDigit(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), isASCIIDigit) >= 0
}

// ValidateNoSpace rejects any whitespace, not only the ASCII space.
func ValidateNoSpace(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
}

// ValidateMaxBytes caps the UTF-8 length of a string, e.g. maxbytes=72.
// The built-in max tag counts runes.
func ValidateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

var markup = sanitize.New()

// ValidateNoMarkup rejects text an HTML parser would read as a tag.
func ValidateNoMarkup(fl validator.FieldLevel) bool {
	return !markup.HasMarkup(fl.Field().String())
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
