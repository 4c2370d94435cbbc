package dto

import (
	"tourcrm/internal/domains/communication/model"
	"tourcrm/shared"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/timezone"
)

type CommunicationRequest struct {
	ClienteID       int64          `db:"cliente_id"       json:"cliente_id"       validate:"required,gt=0"`
	UsuarioID       int64          `db:"usuario_id"       json:"usuario_id"       validate:"required,gt=0"`
	TipoInteraccion string         `db:"tipo_interaccion" json:"tipo_interaccion" validate:"required,oneof=llamada email whatsapp presencial"`
	FechaHora       gDto.Timestamp `db:"fecha_hora"       json:"fecha_hora"`
	Descripcion     *string        `db:"descripcion"      json:"descripcion"`
}

func (r CommunicationRequest) ToModel() (model.Communication, error) {
	fechaHora := r.FechaHora
	if !fechaHora.Valid {
		fechaHora = gDto.NewTimestamp(timezone.Now())
	}

	return model.Communication{
		ClienteID:       r.ClienteID,
		UsuarioID:       r.UsuarioID,
		TipoInteraccion: r.TipoInteraccion,
		FechaHora:       fechaHora,
		Descripcion:     r.Descripcion,
	}, nil
}

// Fields leaves fecha_hora untouched when the request omits it.
func (r CommunicationRequest) Fields() (map[string]any, error) {
	fields := shared.TransformFields(r)
	if !r.FechaHora.Valid {
		delete(fields, model.FieldFechaHora)
	}

	return fields, nil
}
