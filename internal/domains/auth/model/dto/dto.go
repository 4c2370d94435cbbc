package dto

import (
	"strings"
	userModel "tourcrm/internal/domains/user/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// NormalizedEmail is the lookup key: emails are unique case-insensitively.
func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginResponse struct {
	ID     int64   `json:"usuario_id"`
	Nombre string  `json:"nombre"`
	Email  string  `json:"email"`
	Rol    *string `json:"rol"`
}

func (r *LoginResponse) FromUserModel(user userModel.User) {
	r.ID = user.ID
	r.Nombre = user.Nombre
	r.Email = user.Email
	r.Rol = user.Rol
}
