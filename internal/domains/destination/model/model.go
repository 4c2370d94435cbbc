package model

import "time"

const (
	TableName  = "destinos"
	EntityName = "destino"

	FieldID                 = "destino_id"
	FieldNombreDestino      = "nombre_destino"
	FieldPais               = "pais"
	FieldCiudad             = "ciudad"
	FieldCategoria          = "categoria"
	FieldActivo             = "activo"
	FieldFechaActualizacion = "fecha_actualizacion"
)

type Destination struct {
	ID                 int64      `db:"destino_id"          json:"destino_id"`
	NombreDestino      string     `db:"nombre_destino"      json:"nombre_destino"`
	Pais               string     `db:"pais"                json:"pais"`
	Ciudad             *string    `db:"ciudad"              json:"ciudad"`
	Descripcion        *string    `db:"descripcion"         json:"descripcion"`
	Categoria          *string    `db:"categoria"           json:"categoria"`
	Activo             bool       `db:"activo"              json:"activo"`
	FechaActualizacion *time.Time `db:"fecha_actualizacion" json:"fecha_actualizacion" insert:"false"`
}

func (d Destination) GetID() int64 {
	return d.ID
}
