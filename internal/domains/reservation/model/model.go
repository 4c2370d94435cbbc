package model

import gDto "tourcrm/shared/dto"

const (
	TableName  = "reservas"
	EntityName = "reserva"

	FieldID           = "reserva_id"
	FieldClienteID    = "cliente_id"
	FieldPaqueteID    = "paquete_id"
	FieldUsuarioID    = "usuario_id"
	FieldFechaReserva = "fecha_reserva"
	FieldEstado       = "estado"

	EstadoPendiente  = "pendiente"
	EstadoConfirmada = "confirmada"
	EstadoCancelada  = "cancelada"
	EstadoCompletada = "completada"

	clientTable  = "clientes"
	packageTable = "paquetes_turisticos"
	userTable    = "usuarios"
)

type Reservation struct {
	ID           int64          `db:"reserva_id"    json:"reserva_id"`
	ClienteID    int64          `db:"cliente_id"    json:"cliente_id"`
	PaqueteID    int64          `db:"paquete_id"    json:"paquete_id"`
	UsuarioID    int64          `db:"usuario_id"    json:"usuario_id"`
	FechaReserva gDto.Timestamp `db:"fecha_reserva" json:"fecha_reserva"`
	FechaSalida  gDto.Date      `db:"fecha_salida"  json:"fecha_salida"`
	FechaRetorno gDto.Date      `db:"fecha_retorno" json:"fecha_retorno"`
	Estado       string         `db:"estado"        json:"estado"`
	PrecioTotal  float64        `db:"precio_total"  json:"precio_total"`
	Notas        *string        `db:"notas"         json:"notas"`

	ClienteNombre *string `db:"cliente_nombre" json:"cliente_nombre" expr:"clientes.nombre || ' ' || clientes.apellido"`
	NombrePaquete *string `db:"nombre_paquete" json:"nombre_paquete" table:"paquetes_turisticos"`
	UsuarioNombre *string `db:"usuario_nombre" json:"usuario_nombre" table:"usuarios" column:"nombre"`
}

func (r Reservation) GetID() int64 {
	return r.ID
}

// GetJoinQuery resolves display names; a dangling reference leaves them NULL.
func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN " + clientTable + " ON " + clientTable + ".cliente_id = " + TableName + ".cliente_id " +
		"LEFT JOIN " + packageTable + " ON " + packageTable + ".paquete_id = " + TableName + ".paquete_id " +
		"LEFT JOIN " + userTable + " ON " + userTable + ".usuario_id = " + TableName + ".usuario_id"
}
