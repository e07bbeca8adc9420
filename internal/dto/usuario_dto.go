package dto

type CrearUsuarioRequest struct {
	Nombre string  `json:"nombre" validate:"required,min=2"`
	Equipo string  `json:"equipo" validate:"required,oneof=produccion admin"`
	Email  *string `json:"email"  validate:"omitempty,email"`
}

type UsuarioResponse struct {
	ID     uint    `json:"id"`
	Nombre string  `json:"nombre"`
	Equipo string  `json:"equipo"`
	Email  *string `json:"email"`
}
