package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"kasaglow/shared/failure"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/?([0-9]{2})$`)

func registerCardExpiryValidation(field val.FieldLevel) bool {
	return cardExpiryPattern.MatchString(field.Field().String())
}

func registerNotBlankValidation(field val.FieldLevel) bool {
	return strings.TrimSpace(field.Field().String()) != ""
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation("cardexpiry", registerCardExpiryValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("notblank", registerNotBlankValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
