package model

import "time"

const (
	TableName  = "usuarios"
	EntityName = "usuario"

	FieldID            = "usuario_id"
	FieldNombre        = "nombre"
	FieldEmail         = "email"
	FieldRol           = "rol"
	FieldClaveHash     = "clave_hash"
	FieldActivo        = "activo"
	FieldFechaCreacion = "fecha_creacion"
)

// User is a staff account. ClaveHash holds either a bcrypt hash or, for
// accounts created before hashing was introduced, the plaintext credential.
type User struct {
	ID            int64      `db:"usuario_id"     json:"usuario_id"`
	Nombre        string     `db:"nombre"         json:"nombre"`
	Email         string     `db:"email"          json:"email"`
	Rol           *string    `db:"rol"            json:"rol"`
	ClaveHash     string     `db:"clave_hash"     json:"-"`
	Activo        bool       `db:"activo"         json:"activo"`
	FechaCreacion *time.Time `db:"fecha_creacion" json:"fecha_creacion" insert:"false"`
}

func (u User) GetID() int64 {
	return u.ID
}
