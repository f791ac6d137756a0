package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator engine is not go-playground/validator")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
// Domain-specific validators should be registered separately by each domain
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	// Report fields by their wire name so messages line up with the form inputs.
	v.RegisterTagNameFunc(fieldWireName)

	common := map[string]validator.Func{
		"phone":       ValidatePhone,
		"phonedigits": ValidatePhoneDigits,
		"hasletter":   ValidateHasLetter,
		"hasdigit":    ValidateHasDigit,
		"nospace":     ValidateNoSpace,
		"adult":       ValidateAdult,
		"maxbytes":    ValidateMaxBytes,
		"nomarkup":    ValidateNoMarkup,
	}

	names := make([]string, 0, len(common))
	for tag, fn := range common {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
		names = append(names, tag)
	}

	slog.Debug("common validators registered", "validators", strings.Join(names, ","))
	return nil
}

func fieldWireName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}
