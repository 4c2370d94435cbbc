package model

const (
	TableName  = "proveedores"
	EntityName = "proveedor"

	FieldID              = "proveedor_id"
	FieldNombreProveedor = "nombre_proveedor"
	FieldTipo            = "tipo"
	FieldActivo          = "activo"
)

type Provider struct {
	ID              int64   `db:"proveedor_id"     json:"proveedor_id"`
	NombreProveedor string  `db:"nombre_proveedor" json:"nombre_proveedor"`
	Tipo            *string `db:"tipo"             json:"tipo"`
	ContactoNombre  *string `db:"contacto_nombre"  json:"contacto_nombre"`
	Email           *string `db:"email"            json:"email"`
	Telefono        *string `db:"telefono"         json:"telefono"`
	Direccion       *string `db:"direccion"        json:"direccion"`
	Activo          bool    `db:"activo"           json:"activo"`
}

func (p Provider) GetID() int64 {
	return p.ID
}
