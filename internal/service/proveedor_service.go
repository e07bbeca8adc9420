package service

import (
	"context"
	"fmt"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/model"
	"github.com/chebellamachina/VC-LM/internal/repository"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	// Codigo is unique when present; nombre collisions are tolerated at the
	// store level but rejected here to keep the form's picker unambiguous.
	if req.Codigo != nil && *req.Codigo != "" {
		if _, err := s.repo.FindByCodigo(ctx, *req.Codigo); err == nil {
			return nil, fmt.Errorf("%w: proveedor con código %q", ErrDuplicado, *req.Codigo)
		}
	}
	if _, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil {
		return nil, fmt.Errorf("%w: proveedor %q", ErrDuplicado, req.Nombre)
	}

	p := &model.Proveedor{Nombre: req.Nombre, Codigo: req.Codigo, CondicionPago: req.CondicionPago}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *toProveedorResponse(&proveedores[i]))
	}
	return out, nil
}

func toProveedorResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{ID: p.ID, Nombre: p.Nombre, Codigo: p.Codigo, CondicionPago: p.CondicionPago}
}
