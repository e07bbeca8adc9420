package model

// Estado is the lifecycle state of a SolicitudPago.
// Only the storage layer sees it as text; everywhere else it is this closed type.
type Estado string

const (
	EstadoPendiente   Estado = "pendiente"
	EstadoAprobadoCFO Estado = "aprobado_cfo"
	EstadoEnProceso   Estado = "en_proceso"
	EstadoCompletado  Estado = "completado"
	EstadoRechazado   Estado = "rechazado"
)

// transiciones lists, per state, the states it may move to.
// rechazado and completado are terminal. No transition skips a stage.
var transiciones = map[Estado][]Estado{
	EstadoPendiente:   {EstadoAprobadoCFO, EstadoRechazado},
	EstadoAprobadoCFO: {EstadoEnProceso},
	EstadoEnProceso:   {EstadoCompletado},
	EstadoRechazado:   {},
	EstadoCompletado:  {},
}

// Valido reports whether e is one of the five defined states.
func (e Estado) Valido() bool {
	_, ok := transiciones[e]
	return ok
}

// PuedeTransicionarA reports whether the state machine permits e → destino.
func (e Estado) PuedeTransicionarA(destino Estado) bool {
	for _, d := range transiciones[e] {
		if d == destino {
			return true
		}
	}
	return false
}

// EstadosActivos are the states considered "scheduled outflow" by the
// calendar and cashflow views.
func EstadosActivos() []Estado {
	return []Estado{EstadoPendiente, EstadoEnProceso}
}
