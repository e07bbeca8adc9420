package service

import (
	"context"
	"testing"

	"github.com/chebellamachina/VC-LM/internal/config"
	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/middleware"
	"github.com/chebellamachina/VC-LM/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func nuevoEntornoAuth(t *testing.T) (AuthService, *config.Config) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("lacontraseña"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AppPasswordHash:    string(hash),
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 8,
	}
	usuarios := newFakeUsuarioRepo()
	require.NoError(t, usuarios.Create(context.Background(), &model.Usuario{Nombre: "CFO", Equipo: "admin"}))
	return NewAuthService(usuarios, cfg), cfg
}

func TestLoginEmiteTokenConRol(t *testing.T) {
	svc, cfg := nuevoEntornoAuth(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "CFO", Password: "lacontraseña"})
	require.NoError(t, err)
	assert.Equal(t, "CFO", resp.Nombre)
	assert.Equal(t, "admin", resp.Equipo)

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "CFO", claims.Usuario)
	assert.Equal(t, "admin", claims.Equipo)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	svc, _ := nuevoEntornoAuth(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "CFO", Password: "otra"})
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestLoginUsuarioDesconocido(t *testing.T) {
	svc, _ := nuevoEntornoAuth(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "Nadie", Password: "lacontraseña"})
	assert.ErrorIs(t, err, ErrCredenciales)
}
