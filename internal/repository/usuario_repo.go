package repository

import (
	"context"

	"github.com/chebellamachina/VC-LM/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	List(ctx context.Context, equipo string) ([]model.Usuario, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Usuario, error)
	// Delete returns false when no row matched the id.
	Delete(ctx context.Context, id uint) (bool, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) List(ctx context.Context, equipo string) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	q := r.db.WithContext(ctx)
	if equipo != "" {
		q = q.Where("equipo = ?", equipo)
	}
	err := q.Order("nombre").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) FindByNombre(ctx context.Context, nombre string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Usuario{}, id)
	return res.RowsAffected > 0, res.Error
}
