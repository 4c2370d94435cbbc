package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"tourcrm/shared/dto"
	"tourcrm/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const messageInvalidBody = "cuerpo de la solicitud inválido"

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match what clients send.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	validate.RegisterCustomTypeFunc(nullableTime, dto.Date{}, dto.Timestamp{})
}

// nullableTime exposes a NULL date as nil so `required` rejects it.
func nullableTime(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case dto.Date:
		if v.Valid {
			return v.Time
		}
	case dto.Timestamp:
		if v.Valid {
			return v.Time
		}
	}

	return nil
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if errors.Is(err, io.EOF) {
		return ValidateStruct(data)
	}

	if err != nil {
		return failure.BadRequestFromString(decodeMessage(err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// decodeMessage describes a body that could not be decoded without exposing
// decoder internals. A value of the wrong JSON type is reported by its field.
func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return messageInvalidBody
		}

		return strings.NewReplacer("{field}", typeErr.Field).Replace(fallbackMessage)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return messageInvalidBody
	}

	// Remaining errors come from the body types' own UnmarshalJSON.
	return fmt.Sprintf("%s: %s", messageInvalidBody, err)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err, "")

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, such as a path parameter, reporting
// failures under name.
func ValidateVar(name string, value any, tag string) error {
	err := validate.Var(value, tag)

	if err != nil {
		msg := message(err, name)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
