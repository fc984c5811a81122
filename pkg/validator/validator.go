package validator

import (
	"fmt"
	"regexp"
	"strings"

	domain "technopedia-registration/internal/domain/registration"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	// Field values are matched as-is: leading or trailing whitespace
	// is not trimmed before these run.
	fullNameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	mobileRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
)

func init() {
	validate = validator.New()

	validate.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return fullNameRegex.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return mobileRegex.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("branch", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, b := range domain.Branches {
			if val == b {
				return true
			}
		}
		return val == "Other"
	})

	validate.RegisterValidation("academicyear", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, y := range domain.Years {
			if val == y {
				return true
			}
		}
		return false
	})
}

// GetValidator returns the validator instance
func GetValidator() *validator.Validate {
	return validate
}

// ValidateStruct validates a struct
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FormatValidationError turns validator errors into a field-keyed map
// of human-readable messages.
func FormatValidationError(err error) map[string]string {
	fields := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			field := strings.ToLower(fieldError.Field())
			if _, seen := fields[field]; !seen {
				fields[field] = getErrorMessage(fieldError)
			}
		}
	}

	return fields
}

// getErrorMessage returns a human-readable error message for validation errors
func getErrorMessage(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "fullname":
		return "Name should only contain letters and spaces"
	case "inmobile":
		return "Please enter a valid 10-digit mobile number"
	case "alphanum":
		return "PRN should only contain letters and numbers"
	case "branch":
		return "Please select a valid branch"
	case "academicyear":
		return "Please select a valid year"
	case "len":
		if field == "phone" {
			return "Please enter a valid 10-digit mobile number"
		}
		return fmt.Sprintf("%s must be exactly %s characters long", field, fieldError.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
