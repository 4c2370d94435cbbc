package shared

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"tourcrm/shared/constant"
	"tourcrm/shared/dto"
	"tourcrm/shared/failure"
)

// ParseID converts a path id into a positive surrogate key.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(constant.ResponseErrorInvalidID) // nolint:wrapcheck
	}

	return id, nil
}

// TransformFields maps every db-tagged field of a struct to its value, zero
// values included, so the result can replace a whole row. Fields tagged
// `update:"false"` are skipped.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if typ.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := typ.Field(index)

		fieldName := field.Tag.Get("db")
		if fieldName == "" || fieldName == "-" || field.Tag.Get("update") == "false" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	return updatedFields
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...any) string {
	keys := []string{prefix}

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// BuildCacheKeyWithQuery derives a list cache key from the pagination and filter arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	activo := "all"
	if params.Activo != nil {
		activo = strconv.FormatBool(*params.Activo)
	}

	where, args := filter.GetWhereClause()

	key := BuildCacheKey(prefix, params.Page, params.Limit, activo)
	if where != "" {
		key = BuildCacheKey(key, where, fmt.Sprint(args))
	}

	return key
}
