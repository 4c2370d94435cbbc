package dto

import (
	"tourcrm/internal/domains/provider/model"
	"tourcrm/shared"
)

type ProviderRequest struct {
	NombreProveedor string  `db:"nombre_proveedor" json:"nombre_proveedor" validate:"required,notblank,max=100"`
	Tipo            *string `db:"tipo"             json:"tipo"             validate:"omitempty,max=50"`
	ContactoNombre  *string `db:"contacto_nombre"  json:"contacto_nombre"  validate:"omitempty,max=100"`
	Email           *string `db:"email"            json:"email"            validate:"omitempty,max=100"`
	Telefono        *string `db:"telefono"         json:"telefono"         validate:"omitempty,max=20"`
	Direccion       *string `db:"direccion"        json:"direccion"`
	Activo          *bool   `db:"activo"           json:"activo"`
}

func (r ProviderRequest) activo() bool {
	return r.Activo == nil || *r.Activo
}

func (r ProviderRequest) ToModel() (model.Provider, error) {
	return model.Provider{
		NombreProveedor: r.NombreProveedor,
		Tipo:            r.Tipo,
		ContactoNombre:  r.ContactoNombre,
		Email:           r.Email,
		Telefono:        r.Telefono,
		Direccion:       r.Direccion,
		Activo:          r.activo(),
	}, nil
}

func (r ProviderRequest) Fields() (map[string]any, error) {
	fields := shared.TransformFields(r)
	fields[model.FieldActivo] = r.activo()

	return fields, nil
}
