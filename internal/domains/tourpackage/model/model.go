package model

const (
	TableName  = "paquetes_turisticos"
	EntityName = "paquete"

	FieldID            = "paquete_id"
	FieldNombrePaquete = "nombre_paquete"
	FieldDestinoID     = "destino_id"
	FieldActivo        = "activo"

	destinationTable = "destinos"
)

type Package struct {
	ID            int64    `db:"paquete_id"     json:"paquete_id"`
	NombrePaquete string   `db:"nombre_paquete" json:"nombre_paquete"`
	Descripcion   *string  `db:"descripcion"    json:"descripcion"`
	DestinoID     int64    `db:"destino_id"     json:"destino_id"`
	DuracionDias  *int     `db:"duracion_dias"  json:"duracion_dias"`
	PrecioBase    *float64 `db:"precio_base"    json:"precio_base"`
	TipoPaquete   *string  `db:"tipo_paquete"   json:"tipo_paquete"`
	Activo        bool     `db:"activo"         json:"activo"`

	// DestinoNombre reads "ciudad, pais", or just the country when the city is empty.
	DestinoNombre *string `db:"destino_nombre" json:"destino_nombre" expr:"COALESCE(destinos.ciudad, '') || CASE WHEN destinos.ciudad IS NOT NULL AND destinos.ciudad <> '' THEN ', ' ELSE '' END || COALESCE(destinos.pais, '')"`
}

func (p Package) GetID() int64 {
	return p.ID
}

func (Package) GetJoinQuery() string {
	return "LEFT JOIN " + destinationTable + " ON " + destinationTable + ".destino_id = " + TableName + ".destino_id"
}
