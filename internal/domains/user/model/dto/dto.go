package dto

import (
	"time"
	"tourcrm/internal/domains/user/model"
)

// UserResponse is the public view of a user; the stored credential is never
// part of it.
type UserResponse struct {
	ID            int64      `json:"usuario_id"`
	Nombre        string     `json:"nombre"`
	Email         string     `json:"email"`
	Rol           *string    `json:"rol"`
	Activo        bool       `json:"activo"`
	FechaCreacion *time.Time `json:"fecha_creacion"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Nombre = m.Nombre
	r.Email = m.Email
	r.Rol = m.Rol
	r.Activo = m.Activo
	r.FechaCreacion = m.FechaCreacion
}

type GetUsersResponse []UserResponse

func (r *GetUsersResponse) FromModels(models []model.User) {
	*r = make(GetUsersResponse, 0, len(models))

	for _, m := range models {
		var user UserResponse

		user.FromModel(m)
		*r = append(*r, user)
	}
}
