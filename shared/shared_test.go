package shared_test

import (
	"net/http"
	"testing"
	"tourcrm/shared"
	"tourcrm/shared/dto"
	"tourcrm/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectError bool
	}{
		{name: "valid id", input: "42", expected: 42},
		{name: "padded id", input: " 7 ", expected: 7},
		{name: "non numeric", input: "abc", expectError: true},
		{name: "zero", input: "0", expectError: true},
		{name: "negative", input: "-3", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "overflow", input: "99999999999999999999", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestTransformFields(t *testing.T) {
	type request struct {
		ID       int64   `db:"cliente_id" update:"false"`
		Nombre   string  `db:"nombre"`
		Telefono *string `db:"telefono"`
		Activo   bool    `db:"activo"`
		Ignored  string  `db:"-"`
		NoTag    string
	}

	phone := "555-0101"

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: request{ID: 1, Nombre: "Ana", Telefono: &phone, Activo: true, Ignored: "x", NoTag: "y"},
			expected: map[string]any{
				"nombre":   "Ana",
				"telefono": &phone,
				"activo":   true,
			},
		},
		{
			name: "zero values are kept for full replace",
			data: &request{Nombre: "Ana"},
			expected: map[string]any{
				"nombre":   "Ana",
				"telefono": (*string)(nil),
				"activo":   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.data))
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(123, "cliente_id", "clientes")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "cliente_id",
				Value:    int64(123),
				Operator: dto.FilterOperatorEq,
				Table:    "clientes",
			},
		},
	}

	assert.Equal(t, expected, result)

	where, args := result.GetWhereClause()

	assert.Equal(t, "(clientes.cliente_id = :cliente_id)", where)
	assert.Equal(t, map[string]any{"cliente_id": int64(123)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "usuario:get:5", shared.BuildCacheKey("usuario:get", int64(5)))
	assert.Equal(t, "usuario:gets", shared.BuildCacheKey("usuario:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	active := true

	tests := []struct {
		name     string
		params   dto.QueryParams
		filter   dto.FilterGroup
		expected string
	}{
		{
			name:     "no params",
			params:   dto.QueryParams{},
			expected: "usuario:gets:0:0:all",
		},
		{
			name:     "paginated and active",
			params:   dto.QueryParams{Page: 2, Limit: 10, Activo: &active},
			expected: "usuario:gets:2:10:true",
		},
		{
			name:   "with filter",
			params: dto.QueryParams{},
			filter: dto.FilterGroup{
				Filters: []any{dto.Filter{Field: "rol", Value: "admin", Operator: dto.FilterOperatorEq}},
			},
			expected: "usuario:gets:0:0:all:(rol = :rol):map[rol:admin]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKeyWithQuery("usuario:gets", tt.params, tt.filter))
		})
	}
}
