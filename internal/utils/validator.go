package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate

	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator returns a validator with the custom "phone" tag registered
// and field names reported by their json name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldErrors flattens validation errors into field → messages. It returns
// nil for errors that did not come from the validator.
func FieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "phone":
		return "Enter a valid phone number."
	case "min", "gte":
		return "Ensure this value is at least " + fe.Param() + "."
	case "max", "lte":
		return "Ensure this value is at most " + fe.Param() + "."
	case "gt":
		return "Ensure this value is greater than " + fe.Param() + "."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "eqfield":
		return "Must match " + fe.Param() + "."
	case "url":
		return "Enter a valid URL."
	default:
		return "Invalid value."
	}
}
