package repository

import (
	"context"

	"github.com/chebellamachina/VC-LM/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Create(ctx context.Context, p *model.Proveedor) error
	List(ctx context.Context) ([]model.Proveedor, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Proveedor, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Proveedor, error)
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Order("nombre").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) FindByNombre(ctx context.Context, nombre string) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&p).Error
	return &p, err
}

func (r *proveedorRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error
	return &p, err
}
