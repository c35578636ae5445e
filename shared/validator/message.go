package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"notblank":   "{field} is required",
		"gte":        "{field} must be greater than or equal to {param}",
		"lte":        "{field} must be less than or equal to {param}",
		"oneof":      "{field} must be one of {param}",
		"max":        "{field} must be at most {param} characters",
		"min":        "{field} must be at least {param} characters",
		"email":      "{field} must be a valid email address",
		"cardexpiry": "{field} must be a valid expiry date (MM/YY)",
		"datetime":   "{field} must match the format {param}",
	}

	// fieldMessages override messages for a single field, keyed "field.tag".
	fieldMessages = map[string]string{
		"number.min":     "card number must be at least {param} digits",
		"number.max":     "card number must be at most {param} digits",
		"cvc.min":        "cvc must be at least {param} digits",
		"cvc.max":        "cvc must be at most {param} digits",
		"service_id.gte": "service_id must be a catalog id",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr, ok := fieldMessages[field+"."+valErr.Tag()]
			if !ok {
				errStr = messages[valErr.Tag()]
			}

			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
