package dto

import (
	"tourcrm/internal/domains/client/model"
	"tourcrm/shared"
	gDto "tourcrm/shared/dto"
)

type ClientRequest struct {
	Nombre             string    `db:"nombre"              json:"nombre"              validate:"required,notblank,max=100"`
	Apellido           string    `db:"apellido"            json:"apellido"            validate:"required,notblank,max=100"`
	Email              *string   `db:"email"               json:"email"               validate:"omitempty,max=100"`
	Telefono           *string   `db:"telefono"            json:"telefono"            validate:"omitempty,max=20"`
	Direccion          *string   `db:"direccion"           json:"direccion"`
	FechaNacimiento    gDto.Date `db:"fecha_nacimiento"    json:"fecha_nacimiento"`
	DocumentoIdentidad *string   `db:"documento_identidad" json:"documento_identidad" validate:"omitempty,max=20"`
	Nacionalidad       *string   `db:"nacionalidad"        json:"nacionalidad"        validate:"omitempty,max=50"`
	Activo             *bool     `db:"activo"              json:"activo"`
}

func (r ClientRequest) activo() bool {
	return r.Activo == nil || *r.Activo
}

func (r ClientRequest) ToModel() (model.Client, error) {
	return model.Client{
		Nombre:             r.Nombre,
		Apellido:           r.Apellido,
		Email:              r.Email,
		Telefono:           r.Telefono,
		Direccion:          r.Direccion,
		FechaNacimiento:    r.FechaNacimiento,
		DocumentoIdentidad: r.DocumentoIdentidad,
		Nacionalidad:       r.Nacionalidad,
		Activo:             r.activo(),
	}, nil
}

func (r ClientRequest) Fields() (map[string]any, error) {
	fields := shared.TransformFields(r)
	fields[model.FieldActivo] = r.activo()

	return fields, nil
}
