package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/campus-survey/internal/pkg/apperrors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field names in reported errors are the
// JSON names of the struct fields, so messages match what clients send.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s and converts the first failing rule into an
// apperrors.ValidationError naming the offending field.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), FormatFieldError(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

// FormatFieldError creates a human-readable message for a failed rule.
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "failed validation: " + e.Tag()
	}
}
