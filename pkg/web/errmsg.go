package web

import (
	"github.com/go-playground/validator/v10"
)

// GetErrorMsg converts the first field validation error into a
// human readable message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " is required"
	case "min":
		return field.Field() + " must be greater or equal to " + field.Param()
	case "max":
		return field.Field() + " must be less or equal to " + field.Param()
	case "alphanum":
		return field.Field() + " must contain only letters and numbers"
	case "txtype":
		return field.Field() + " must be D or W"
	case "decimal":
		return field.Field() + " is invalid"
	}

	return field.Field() + " is invalid"
}
