package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransicionesPermitidas(t *testing.T) {
	casos := []struct {
		desde, hacia Estado
		permitida    bool
	}{
		{EstadoPendiente, EstadoAprobadoCFO, true},
		{EstadoPendiente, EstadoRechazado, true},
		{EstadoAprobadoCFO, EstadoEnProceso, true},
		{EstadoEnProceso, EstadoCompletado, true},

		{EstadoPendiente, EstadoEnProceso, false},
		{EstadoPendiente, EstadoCompletado, false},
		{EstadoAprobadoCFO, EstadoCompletado, false},
		{EstadoAprobadoCFO, EstadoRechazado, false},
		{EstadoRechazado, EstadoAprobadoCFO, false},
		{EstadoCompletado, EstadoPendiente, false},
		{EstadoCompletado, EstadoEnProceso, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.permitida, c.desde.PuedeTransicionarA(c.hacia),
			"%s → %s", c.desde, c.hacia)
	}
}

func TestEstadoValido(t *testing.T) {
	assert.True(t, EstadoPendiente.Valido())
	assert.True(t, EstadoRechazado.Valido())
	assert.False(t, Estado("archivado").Valido())
	assert.False(t, Estado("").Valido())
}

func TestEstadosActivos(t *testing.T) {
	assert.ElementsMatch(t, []Estado{EstadoPendiente, EstadoEnProceso}, EstadosActivos())
}
