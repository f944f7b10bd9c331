package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// View mode validation (empty means "use the default")
	validate.RegisterValidation("view_mode", func(fl validator.FieldLevel) bool {
		mode := fl.Field().String()
		validModes := []string{"day", "week", "month", ""}
		for _, m := range validModes {
			if mode == m {
				return true
			}
		}
		return false
	})

	// Time-of-day offset in seconds from midnight
	validate.RegisterValidation("time_of_day", func(fl validator.FieldLevel) bool {
		seconds := fl.Field().Int()
		return seconds >= 0 && seconds < 24*60*60
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "view_mode":
			errors[field] = "Invalid view mode. Must be: day, week, or month"
		case "time_of_day":
			errors[field] = "Time of day must be between 0 and 86399 seconds"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
