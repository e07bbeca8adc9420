package service

import (
	"context"
	"testing"

	"github.com/chebellamachina/VC-LM/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProveedor(t *testing.T) {
	svc := NewProveedorService(newFakeProveedorRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:        "Maderera del Sur",
		Codigo:        ptr("MDS-01"),
		CondicionPago: ptr("30 días fecha factura"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
}

func TestCrearProveedorDuplicado(t *testing.T) {
	svc := NewProveedorService(newFakeProveedorRepo())

	_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Maderera del Sur", Codigo: ptr("MDS-01")})
	require.NoError(t, err)

	t.Run("mismo codigo", func(t *testing.T) {
		_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Otra", Codigo: ptr("MDS-01")})
		assert.ErrorIs(t, err, ErrDuplicado)
	})
	t.Run("mismo nombre", func(t *testing.T) {
		_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Maderera del Sur"})
		assert.ErrorIs(t, err, ErrDuplicado)
	})
}

func TestListarProveedoresOrdenados(t *testing.T) {
	svc := NewProveedorService(newFakeProveedorRepo())

	for _, nombre := range []string{"Zeta Insumos", "Aserradero Norte"} {
		_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: nombre})
		require.NoError(t, err)
	}

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "Aserradero Norte", lista[0].Nombre)
}
