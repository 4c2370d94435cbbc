package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackMessage = "{field} no es válido"

// Templates keyed by validation tag. {field} is the json name of the field,
// {param} the tag parameter.
var messages = map[string]string{
	"required": "{field} es obligatorio",
	"notblank": "{field} es obligatorio",
	"gte":      "{field} debe ser mayor o igual a {param}",
	"lte":      "{field} debe ser menor o igual a {param}",
	"gt":       "{field} debe ser mayor que {param}",
	"oneof":    "{field} debe ser uno de: {param}",
	"max":      "{field} debe ser como máximo {param}",
	"min":      "{field} debe ser como mínimo {param}",
	"email":    "{field} debe ser un email válido",
	"datetime": "{field} debe tener el formato {param}",
}

// message renders the first failed rule of err. name replaces the field
// name, which single value validations do not carry. Errors that did not
// come from the validator are returned as is.
func message(err error, name string) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	return render(fieldErrors[0], name)
}

func render(fieldErr val.FieldError, name string) string {
	template, ok := messages[fieldErr.Tag()]
	if !ok {
		template = fallbackMessage
	}

	if name == "" {
		name = fieldErr.Field()
	}

	return strings.NewReplacer("{field}", name, "{param}", fieldErr.Param()).Replace(template)
}
