package dto

import (
	"tourcrm/internal/domains/reservation/model"
	"tourcrm/shared"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/timezone"
)

type ReservationRequest struct {
	ClienteID    int64          `db:"cliente_id"    json:"cliente_id"    validate:"required,gt=0"`
	PaqueteID    int64          `db:"paquete_id"    json:"paquete_id"    validate:"required,gt=0"`
	UsuarioID    int64          `db:"usuario_id"    json:"usuario_id"    validate:"required,gt=0"`
	FechaReserva gDto.Timestamp `db:"fecha_reserva" json:"fecha_reserva"`
	FechaSalida  gDto.Date      `db:"fecha_salida"  json:"fecha_salida"  validate:"required"`
	FechaRetorno gDto.Date      `db:"fecha_retorno" json:"fecha_retorno"`
	Estado       string         `db:"estado"        json:"estado"        validate:"omitempty,oneof=pendiente confirmada cancelada completada"`
	PrecioTotal  float64        `db:"precio_total"  json:"precio_total"  validate:"required,gt=0"`
	Notas        *string        `db:"notas"         json:"notas"`
}

func (r ReservationRequest) withDefaults() ReservationRequest {
	if r.Estado == "" {
		r.Estado = model.EstadoPendiente
	}

	return r
}

func (r ReservationRequest) ToModel() (model.Reservation, error) {
	r = r.withDefaults()

	fechaReserva := r.FechaReserva
	if !fechaReserva.Valid {
		fechaReserva = gDto.NewTimestamp(timezone.Now())
	}

	return model.Reservation{
		ClienteID:    r.ClienteID,
		PaqueteID:    r.PaqueteID,
		UsuarioID:    r.UsuarioID,
		FechaReserva: fechaReserva,
		FechaSalida:  r.FechaSalida,
		FechaRetorno: r.FechaRetorno,
		Estado:       r.Estado,
		PrecioTotal:  r.PrecioTotal,
		Notas:        r.Notas,
	}, nil
}

// Fields leaves fecha_reserva untouched when the request omits it.
func (r ReservationRequest) Fields() (map[string]any, error) {
	fields := shared.TransformFields(r.withDefaults())
	if !r.FechaReserva.Valid {
		delete(fields, model.FieldFechaReserva)
	}

	return fields, nil
}
