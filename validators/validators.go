package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/blogql/backend/internal/apperrors"
)

// CustomValidator wraps a go-playground validator so every mutation input is
// checked the same way. It doubles as the echo.Validator for the server.
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator creates a CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the structural constraints declared on the input struct.
// Every violation is collected and joined into a single validation error,
// not just the first one. Semantic checks (uniqueness, existence)
// stay with the resolvers.
func (cv *CustomValidator) Validate(input interface{}) error {
	err := cv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Validation(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperrors.Validation("Validation Error: " + strings.Join(msgs, ", "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "alphanum":
		return fmt.Sprintf("%q must only contain alphanumeric characters", field)
	case "url":
		return fmt.Sprintf("%q must be a valid URL", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%q must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be at least %s", field, fe.Param())
	case "max":
		switch fe.Kind().String() {
		case "string":
			return fmt.Sprintf("%q must be at most %s characters long", field, fe.Param())
		case "slice":
			return fmt.Sprintf("%q must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%q must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%q failed on the %q constraint", field, fe.Tag())
	}
}
