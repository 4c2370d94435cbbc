package dto

import (
	"tourcrm/internal/domains/tourpackage/model"
	"tourcrm/shared"
)

type PackageRequest struct {
	NombrePaquete string   `db:"nombre_paquete" json:"nombre_paquete" validate:"required,notblank,max=100"`
	Descripcion   *string  `db:"descripcion"    json:"descripcion"`
	DestinoID     int64    `db:"destino_id"     json:"destino_id"     validate:"required,gt=0"`
	DuracionDias  *int     `db:"duracion_dias"  json:"duracion_dias"  validate:"omitempty,gt=0"`
	PrecioBase    *float64 `db:"precio_base"    json:"precio_base"    validate:"omitempty,gte=0"`
	TipoPaquete   *string  `db:"tipo_paquete"   json:"tipo_paquete"   validate:"omitempty,max=50"`
	Activo        *bool    `db:"activo"         json:"activo"`
}

func (r PackageRequest) activo() bool {
	return r.Activo == nil || *r.Activo
}

func (r PackageRequest) ToModel() (model.Package, error) {
	return model.Package{
		NombrePaquete: r.NombrePaquete,
		Descripcion:   r.Descripcion,
		DestinoID:     r.DestinoID,
		DuracionDias:  r.DuracionDias,
		PrecioBase:    r.PrecioBase,
		TipoPaquete:   r.TipoPaquete,
		Activo:        r.activo(),
	}, nil
}

func (r PackageRequest) Fields() (map[string]any, error) {
	fields := shared.TransformFields(r)
	fields[model.FieldActivo] = r.activo()

	return fields, nil
}
