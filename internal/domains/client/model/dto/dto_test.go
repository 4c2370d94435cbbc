package dto_test

import (
	"testing"
	"tourcrm/internal/domains/client/model"
	"tourcrm/internal/domains/client/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRequest_ActivoDefaultsToTrue(t *testing.T) {
	inactive := false

	tests := []struct {
		name   string
		activo *bool
		want   bool
	}{
		{name: "omitted", activo: nil, want: true},
		{name: "explicit false", activo: &inactive, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ClientRequest{Nombre: "Ana", Apellido: "Pérez", Activo: tt.activo}

			m, err := req.ToModel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Activo)

			fields, err := req.Fields()
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields[model.FieldActivo])
		})
	}
}

func TestClientRequest_FieldsReplacesWholeRow(t *testing.T) {
	fields, err := dto.ClientRequest{Nombre: "Ana", Apellido: "Pérez"}.Fields()

	require.NoError(t, err)
	assert.Len(t, fields, 9)
	assert.Nil(t, fields["email"])
	assert.NotContains(t, fields, model.FieldFechaRegistro)
	assert.NotContains(t, fields, model.FieldID)
}
