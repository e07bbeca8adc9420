package dto

type LoginRequest struct {
	Usuario  string `json:"usuario"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Nombre string `json:"nombre"`
	Equipo string `json:"equipo"`
}
