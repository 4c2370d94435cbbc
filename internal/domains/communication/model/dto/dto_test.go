package dto_test

import (
	"testing"
	"time"
	"tourcrm/internal/domains/communication/model"
	"tourcrm/internal/domains/communication/model/dto"
	gDto "tourcrm/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunicationRequest_ToModel(t *testing.T) {
	m, err := dto.CommunicationRequest{ClienteID: 1, UsuarioID: 1, TipoInteraccion: "llamada"}.ToModel()

	require.NoError(t, err)
	assert.True(t, m.FechaHora.Valid)
	assert.Equal(t, "llamada", m.TipoInteraccion)

	at := gDto.NewTimestamp(time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC))

	m, err = dto.CommunicationRequest{ClienteID: 1, UsuarioID: 1, TipoInteraccion: "email", FechaHora: at}.ToModel()

	require.NoError(t, err)
	assert.Equal(t, at, m.FechaHora)
}

func TestCommunicationRequest_Fields(t *testing.T) {
	fields, err := dto.CommunicationRequest{ClienteID: 4, UsuarioID: 2, TipoInteraccion: "whatsapp"}.Fields()

	require.NoError(t, err)
	assert.NotContains(t, fields, model.FieldFechaHora)
	assert.Equal(t, "whatsapp", fields[model.FieldTipoInteraccion])
	assert.Contains(t, fields, "descripcion")
	assert.Len(t, fields, 4)
}
