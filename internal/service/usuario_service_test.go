package service

import (
	"context"
	"testing"

	"github.com/chebellamachina/VC-LM/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearUsuario(t *testing.T) {
	svc := NewUsuarioService(newFakeUsuarioRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Ana",
		Equipo: "produccion",
		Email:  ptr("ana@vcpagos.local"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "produccion", resp.Equipo)
}

func TestCrearUsuarioDuplicado(t *testing.T) {
	svc := NewUsuarioService(newFakeUsuarioRepo())

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Ana", Equipo: "produccion"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Ana", Equipo: "admin"})
	assert.ErrorIs(t, err, ErrDuplicado)
}

func TestListarUsuariosPorEquipo(t *testing.T) {
	svc := NewUsuarioService(newFakeUsuarioRepo())

	for _, u := range []dto.CrearUsuarioRequest{
		{Nombre: "Ana", Equipo: "produccion"},
		{Nombre: "Bruno", Equipo: "produccion"},
		{Nombre: "CFO", Equipo: "admin"},
	} {
		_, err := svc.Crear(context.Background(), u)
		require.NoError(t, err)
	}

	produccion, err := svc.Listar(context.Background(), "produccion")
	require.NoError(t, err)
	assert.Len(t, produccion, 2)

	todos, err := svc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestEliminarUsuario(t *testing.T) {
	svc := NewUsuarioService(newFakeUsuarioRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Ana", Equipo: "produccion"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), resp.ID))
	assert.ErrorIs(t, svc.Eliminar(context.Background(), resp.ID), ErrNoEncontrado)
}
