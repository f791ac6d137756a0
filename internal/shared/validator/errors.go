package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field's wire name to the message shown next to it.
type FieldErrors map[string]string

// Add keeps the first message recorded for a field.
func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// Fields returns the failing field names in a stable order.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Messages is a form's message catalog.
// Keys are "field.tag" for a specific rule or "field" for any rule on that field.
type Messages map[string]string

func (m Messages) lookup(fe validator.FieldError) string {
	field := fieldName(fe)
	if msg, ok := m[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return getErrorMessage(fe)
}

// Translate converts gin binding/validator errors into per-field messages.
func Translate(err error, messages Messages) (FieldErrors, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	fields := FieldErrors{}
	for _, fe := range validationErrors {
		fields.Add(fieldName(fe), messages.lookup(fe))
	}
	return fields, true
}

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error, messages Messages) (*sharedError.ValidationErrorResponse, bool) {
	fields, ok := Translate(err, messages)
	if !ok {
		return nil, false
	}

	resp := sharedError.NewValidationErrorResponse(fields)
	return &resp, true
}

// fieldName strips element indexes so hobbies[1] reports as hobbies.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Cannot exceed %s characters", fe.Param())
	case "eqfield":
		return "Values must match"
	case "phone", "phonedigits":
		return "Phone number is not valid"
	case "adult":
		return fmt.Sprintf("You must be at least %d years old", AdultAge)
	case "datetime":
		return "Invalid date"
	case "maxbytes":
		return fmt.Sprintf("Cannot exceed %s bytes", fe.Param())
	case "nomarkup":
		return "HTML markup is not allowed"
	default:
		return fmt.Sprintf("'%s' is not valid", fieldName(fe))
	}
}
