// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator reports failures as a domain ValidationError keyed by JSON field name.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that names fields after their json tags.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make(domainerrors.FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldName(fieldErr)] = reason(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

// fieldName drops the root struct name from the namespace, e.g. "shipping.zip".
func fieldName(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return fieldErr.Field()
}

func reason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "required_without", "required_unless":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "iso3166_1_alpha2":
		return "must be an ISO 3166-1 alpha-2 country code"
	default:
		return "failed on " + fieldErr.Tag()
	}
}
