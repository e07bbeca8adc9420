package service

import (
	"context"
	"fmt"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/model"
	"github.com/chebellamachina/VC-LM/internal/repository"
)

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, equipo string) ([]dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	// Guard: nombre is the join key used by requests; one user per name.
	if _, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil {
		return nil, fmt.Errorf("%w: el usuario %q ya existe", ErrDuplicado, req.Nombre)
	}

	u := &model.Usuario{Nombre: req.Nombre, Equipo: req.Equipo, Email: req.Email}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

func (s *usuarioService) Listar(ctx context.Context, equipo string) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx, equipo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *toUsuarioResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id uint) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: usuario %d", ErrNoEncontrado, id)
	}
	return nil
}

func toUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{ID: u.ID, Nombre: u.Nombre, Equipo: u.Equipo, Email: u.Email}
}
