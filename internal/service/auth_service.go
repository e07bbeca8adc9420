package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chebellamachina/VC-LM/internal/config"
	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/middleware"
	"github.com/chebellamachina/VC-LM/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrCredenciales never reveals which part of the login failed.
var ErrCredenciales = errors.New("credenciales inválidas")

// AuthService implements the tool's historical access model: one shared
// password for the whole team, plus a user picker that decides the role.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	cfg         *config.Config
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{usuarioRepo: usuarioRepo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AppPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}

	usuario, err := s.usuarioRepo.FindByNombre(ctx, req.Usuario)
	if err != nil {
		return nil, ErrCredenciales
	}

	claims := middleware.Claims{
		Usuario: usuario.Nombre,
		Equipo:  usuario.Equipo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("firmando token: %w", err)
	}

	return &dto.LoginResponse{Token: firmado, Nombre: usuario.Nombre, Equipo: usuario.Equipo}, nil
}
