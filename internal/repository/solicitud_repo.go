package repository

import (
	"context"
	"time"

	"github.com/chebellamachina/VC-LM/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CamposEstado are the optional fields a status update may carry. Only
// non-nil fields are written; everything else on the row stays untouched.
type CamposEstado struct {
	NotasAdmin         *string
	AdjuntoComprobante *string
	AprobadoCFO        *bool
	AprobadoCFOPor     *string
	AprobadoCFOEn      *time.Time
}

// EstadoStat is one row of the per-status aggregation.
type EstadoStat struct {
	Estado   model.Estado
	Cantidad int64
	Total    decimal.Decimal
}

type SolicitudRepository interface {
	Create(ctx context.Context, s *model.SolicitudPago) error
	FindByID(ctx context.Context, id uint) (*model.SolicitudPago, error)
	// List returns requests newest-first, optionally restricted to one status
	// (estado == "" means all).
	List(ctx context.Context, estado model.Estado) ([]model.SolicitudPago, error)
	ListByEstados(ctx context.Context, estados []model.Estado) ([]model.SolicitudPago, error)
	// UpdateEstado performs the guarded status write: the row is only touched
	// when its current status still equals desde. Returns rows affected so the
	// caller can distinguish a lost race from success. updated_at is always
	// refreshed; completed_at is set exactly when the row first becomes
	// completado.
	UpdateEstado(ctx context.Context, id uint, desde, hacia model.Estado, campos CamposEstado) (int64, error)
	StatsPorEstado(ctx context.Context) ([]EstadoStat, error)
}

type solicitudRepo struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) SolicitudRepository { return &solicitudRepo{db: db} }

func (r *solicitudRepo) Create(ctx context.Context, s *model.SolicitudPago) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *solicitudRepo) FindByID(ctx context.Context, id uint) (*model.SolicitudPago, error) {
	var s model.SolicitudPago
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *solicitudRepo) List(ctx context.Context, estado model.Estado) ([]model.SolicitudPago, error) {
	var solicitudes []model.SolicitudPago
	q := r.db.WithContext(ctx)
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	err := q.Order("created_at DESC").Find(&solicitudes).Error
	return solicitudes, err
}

func (r *solicitudRepo) ListByEstados(ctx context.Context, estados []model.Estado) ([]model.SolicitudPago, error) {
	var solicitudes []model.SolicitudPago
	err := r.db.WithContext(ctx).
		Where("estado IN ?", estados).
		Order("created_at DESC").
		Find(&solicitudes).Error
	return solicitudes, err
}

func (r *solicitudRepo) UpdateEstado(ctx context.Context, id uint, desde, hacia model.Estado, campos CamposEstado) (int64, error) {
	ahora := time.Now()
	cambios := map[string]interface{}{
		"estado":     hacia,
		"updated_at": ahora,
	}
	if campos.NotasAdmin != nil {
		cambios["notas_admin"] = *campos.NotasAdmin
	}
	if campos.AdjuntoComprobante != nil {
		cambios["adjunto_comprobante"] = *campos.AdjuntoComprobante
	}
	if campos.AprobadoCFO != nil {
		cambios["aprobado_cfo"] = *campos.AprobadoCFO
	}
	if campos.AprobadoCFOPor != nil {
		cambios["aprobado_cfo_por"] = *campos.AprobadoCFOPor
	}
	if campos.AprobadoCFOEn != nil {
		cambios["aprobado_cfo_en"] = *campos.AprobadoCFOEn
	}
	// completed_at only on the transition INTO completado; re-applying the
	// current status (notes save) must not refresh it.
	if hacia == model.EstadoCompletado && desde != model.EstadoCompletado {
		cambios["completed_at"] = ahora
	}

	res := r.db.WithContext(ctx).
		Model(&model.SolicitudPago{}).
		Where("id = ? AND estado = ?", id, desde).
		Updates(cambios)
	return res.RowsAffected, res.Error
}

func (r *solicitudRepo) StatsPorEstado(ctx context.Context) ([]EstadoStat, error) {
	var stats []EstadoStat
	err := r.db.WithContext(ctx).
		Model(&model.SolicitudPago{}).
		Select("estado, COUNT(*) AS cantidad, COALESCE(SUM(monto), 0) AS total").
		Group("estado").
		Scan(&stats).Error
	return stats, err
}
