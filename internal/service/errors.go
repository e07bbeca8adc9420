package service

import "errors"

// Sentinel errors shared by all services. Handlers map these to HTTP status
// codes with errors.Is; the wrapped message carries the user-facing detail.
var (
	ErrValidacion         = errors.New("error de validación")
	ErrDuplicado          = errors.New("ya existe un registro con esa clave")
	ErrNoEncontrado       = errors.New("registro no encontrado")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	// ErrConflicto: the guarded update matched zero rows; another caller
	// moved the request between our read and our write.
	ErrConflicto = errors.New("la solicitud fue modificada por otra operación")
)
