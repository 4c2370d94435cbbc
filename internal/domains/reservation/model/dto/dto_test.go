package dto_test

import (
	"testing"
	"time"
	"tourcrm/internal/domains/reservation/model"
	"tourcrm/internal/domains/reservation/model/dto"
	gDto "tourcrm/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRequest_ToModel(t *testing.T) {
	salida := gDto.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	t.Run("applies defaults", func(t *testing.T) {
		before := time.Now().Add(-time.Second)

		m, err := dto.ReservationRequest{ClienteID: 1, PaqueteID: 2, UsuarioID: 3, FechaSalida: salida, PrecioTotal: 1500}.ToModel()

		require.NoError(t, err)
		assert.Equal(t, model.EstadoPendiente, m.Estado)
		assert.True(t, m.FechaReserva.Valid)
		assert.True(t, m.FechaReserva.Time.After(before))
		assert.False(t, m.FechaRetorno.Valid)
		assert.Zero(t, m.ID)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		reservedAt := gDto.NewTimestamp(time.Date(2023, 10, 15, 9, 0, 0, 0, time.UTC))

		m, err := dto.ReservationRequest{
			ClienteID:    1,
			PaqueteID:    2,
			UsuarioID:    3,
			FechaReserva: reservedAt,
			FechaSalida:  salida,
			Estado:       model.EstadoConfirmada,
			PrecioTotal:  1500,
		}.ToModel()

		require.NoError(t, err)
		assert.Equal(t, model.EstadoConfirmada, m.Estado)
		assert.Equal(t, reservedAt, m.FechaReserva)
	})
}

func TestReservationRequest_Fields(t *testing.T) {
	salida := gDto.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	req := dto.ReservationRequest{ClienteID: 1, PaqueteID: 2, UsuarioID: 3, FechaSalida: salida, PrecioTotal: 99.5}

	fields, err := req.Fields()

	require.NoError(t, err)
	assert.NotContains(t, fields, model.FieldFechaReserva)
	assert.Equal(t, model.EstadoPendiente, fields[model.FieldEstado])
	assert.Equal(t, int64(1), fields[model.FieldClienteID])
	assert.Contains(t, fields, "notas")
	assert.Contains(t, fields, "fecha_retorno")

	req.FechaReserva = gDto.NewTimestamp(time.Now())

	fields, err = req.Fields()

	require.NoError(t, err)
	assert.Contains(t, fields, model.FieldFechaReserva)
}
