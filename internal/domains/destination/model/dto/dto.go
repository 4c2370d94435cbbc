package dto

import (
	"tourcrm/internal/domains/destination/model"
	"tourcrm/shared"
)

type DestinationRequest struct {
	NombreDestino string  `db:"nombre_destino" json:"nombre_destino" validate:"required,notblank,max=100"`
	Pais          string  `db:"pais"           json:"pais"           validate:"required,notblank,max=50"`
	Ciudad        *string `db:"ciudad"         json:"ciudad"         validate:"omitempty,max=50"`
	Descripcion   *string `db:"descripcion"    json:"descripcion"`
	Categoria     *string `db:"categoria"      json:"categoria"      validate:"omitempty,max=50"`
	Activo        *bool   `db:"activo"         json:"activo"`
}

func (r DestinationRequest) activo() bool {
	return r.Activo == nil || *r.Activo
}

func (r DestinationRequest) ToModel() (model.Destination, error) {
	return model.Destination{
		NombreDestino: r.NombreDestino,
		Pais:          r.Pais,
		Ciudad:        r.Ciudad,
		Descripcion:   r.Descripcion,
		Categoria:     r.Categoria,
		Activo:        r.activo(),
	}, nil
}

func (r DestinationRequest) Fields() (map[string]any, error) {
	fields := shared.TransformFields(r)
	fields[model.FieldActivo] = r.activo()

	return fields, nil
}
