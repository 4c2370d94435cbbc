package model

import gDto "tourcrm/shared/dto"

const (
	TableName  = "comunicaciones"
	EntityName = "interaccion"

	FieldID              = "interaccion_id"
	FieldClienteID       = "cliente_id"
	FieldUsuarioID       = "usuario_id"
	FieldTipoInteraccion = "tipo_interaccion"
	FieldFechaHora       = "fecha_hora"

	clientTable = "clientes"
	userTable   = "usuarios"
)

type Communication struct {
	ID              int64          `db:"interaccion_id"   json:"interaccion_id"`
	ClienteID       int64          `db:"cliente_id"       json:"cliente_id"`
	UsuarioID       int64          `db:"usuario_id"       json:"usuario_id"`
	TipoInteraccion string         `db:"tipo_interaccion" json:"tipo_interaccion"`
	FechaHora       gDto.Timestamp `db:"fecha_hora"       json:"fecha_hora"`
	Descripcion     *string        `db:"descripcion"      json:"descripcion"`

	ClienteNombre string `db:"cliente_nombre" json:"cliente_nombre" expr:"clientes.nombre || ' ' || clientes.apellido"`
	UsuarioNombre string `db:"usuario_nombre" json:"usuario_nombre" table:"usuarios" column:"nombre"`
}

func (c Communication) GetID() int64 {
	return c.ID
}

// GetJoinQuery uses inner joins: a log entry whose client or user row is
// gone is not listed.
func (Communication) GetJoinQuery() string {
	return "JOIN " + clientTable + " ON " + clientTable + ".cliente_id = " + TableName + ".cliente_id " +
		"JOIN " + userTable + " ON " + userTable + ".usuario_id = " + TableName + ".usuario_id"
}
