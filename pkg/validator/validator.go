package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	PhoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-.]{5,32}$`)
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
// It returns a new DefaultValidator and an error if the validator registration fails.
// Field names in validation errors are taken from the json tag when present.
func NewDefaultValidator() (*DefaultValidator, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// Register custom validators
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		return nil, fmt.Errorf("register notblank validator: %w", err)
	}

	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return nil, fmt.Errorf("register phone validator: %w", err)
	}

	if err := v.RegisterValidation("enum", validateEnum); err != nil {
		return nil, fmt.Errorf("register enum validator: %w", err)
	}

	return &DefaultValidator{v: v}, nil
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "notblank":
		return "must not be blank"
	case "phone":
		return "must be a valid phone number"
	case "enum":
		return fmt.Sprintf("invalid enum value: %v", fe.Value())
	default:
		return "is invalid"
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePhone(fl validator.FieldLevel) bool {
	return PhoneRegex.MatchString(fl.Field().String())
}

func validateEnum(fl validator.FieldLevel) bool {
	type Enum interface {
		Validate() error
	}

	value, ok := fl.Field().Interface().(Enum)
	if !ok {
		return false
	}

	return value.Validate() == nil
}
