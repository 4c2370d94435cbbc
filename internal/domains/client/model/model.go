package model

import (
	"time"
	gDto "tourcrm/shared/dto"
)

const (
	TableName  = "clientes"
	EntityName = "cliente"

	FieldID            = "cliente_id"
	FieldNombre        = "nombre"
	FieldApellido      = "apellido"
	FieldEmail         = "email"
	FieldActivo        = "activo"
	FieldFechaRegistro = "fecha_registro"
)

type Client struct {
	ID                 int64      `db:"cliente_id"          json:"cliente_id"`
	Nombre             string     `db:"nombre"              json:"nombre"`
	Apellido           string     `db:"apellido"            json:"apellido"`
	Email              *string    `db:"email"               json:"email"`
	Telefono           *string    `db:"telefono"            json:"telefono"`
	Direccion          *string    `db:"direccion"           json:"direccion"`
	FechaNacimiento    gDto.Date  `db:"fecha_nacimiento"    json:"fecha_nacimiento"`
	DocumentoIdentidad *string    `db:"documento_identidad" json:"documento_identidad"`
	Nacionalidad       *string    `db:"nacionalidad"        json:"nacionalidad"`
	Activo             bool       `db:"activo"              json:"activo"`
	FechaRegistro      *time.Time `db:"fecha_registro"      json:"fecha_registro"      insert:"false"`
}

func (c Client) GetID() int64 {
	return c.ID
}
