package dto

type CrearProveedorRequest struct {
	Nombre        string  `json:"nombre" validate:"required,min=2"`
	Codigo        *string `json:"codigo"`
	CondicionPago *string `json:"condicion_pago"`
}

type ProveedorResponse struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Codigo        *string `json:"codigo"`
	CondicionPago *string `json:"condicion_pago"`
}
