package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chebellamachina/VC-LM/internal/model"
	"github.com/chebellamachina/VC-LM/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeSolicitudRepo mimics the Postgres store in memory, including the
// guarded status update.
type fakeSolicitudRepo struct {
	mu    sync.Mutex
	seq   uint
	filas map[uint]*model.SolicitudPago
	reloj time.Time
}

func newFakeSolicitudRepo() *fakeSolicitudRepo {
	return &fakeSolicitudRepo{
		filas: make(map[uint]*model.SolicitudPago),
		reloj: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fakeSolicitudRepo) tic() time.Time {
	f.reloj = f.reloj.Add(time.Minute)
	return f.reloj
}

func (f *fakeSolicitudRepo) Create(_ context.Context, s *model.SolicitudPago) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	s.ID = f.seq
	ahora := f.tic()
	s.CreatedAt = ahora
	s.UpdatedAt = ahora
	copia := *s
	f.filas[s.ID] = &copia
	return nil
}

func (f *fakeSolicitudRepo) FindByID(_ context.Context, id uint) (*model.SolicitudPago, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.filas[id]
	if !ok {
		return &model.SolicitudPago{}, gorm.ErrRecordNotFound
	}
	copia := *s
	return &copia, nil
}

func (f *fakeSolicitudRepo) List(_ context.Context, estado model.Estado) ([]model.SolicitudPago, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SolicitudPago
	for _, s := range f.filas {
		if estado != "" && s.Estado != estado {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSolicitudRepo) ListByEstados(_ context.Context, estados []model.Estado) ([]model.SolicitudPago, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	quiero := make(map[model.Estado]bool, len(estados))
	for _, e := range estados {
		quiero[e] = true
	}
	var out []model.SolicitudPago
	for _, s := range f.filas {
		if quiero[s.Estado] {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSolicitudRepo) UpdateEstado(_ context.Context, id uint, desde, hacia model.Estado, campos repository.CamposEstado) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.filas[id]
	if !ok || s.Estado != desde {
		return 0, nil
	}
	ahora := f.tic()
	s.Estado = hacia
	s.UpdatedAt = ahora
	if campos.NotasAdmin != nil {
		s.NotasAdmin = campos.NotasAdmin
	}
	if campos.AdjuntoComprobante != nil {
		s.AdjuntoComprobante = campos.AdjuntoComprobante
	}
	if campos.AprobadoCFO != nil {
		s.AprobadoCFO = *campos.AprobadoCFO
	}
	if campos.AprobadoCFOPor != nil {
		s.AprobadoCFOPor = campos.AprobadoCFOPor
	}
	if campos.AprobadoCFOEn != nil {
		s.AprobadoCFOEn = campos.AprobadoCFOEn
	}
	if hacia == model.EstadoCompletado && desde != model.EstadoCompletado {
		t := ahora
		s.CompletedAt = &t
	}
	return 1, nil
}

func (f *fakeSolicitudRepo) StatsPorEstado(_ context.Context) ([]repository.EstadoStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acum := make(map[model.Estado]*repository.EstadoStat)
	for _, s := range f.filas {
		st, ok := acum[s.Estado]
		if !ok {
			st = &repository.EstadoStat{Estado: s.Estado, Total: decimal.Zero}
			acum[s.Estado] = st
		}
		st.Cantidad++
		st.Total = st.Total.Add(s.Monto)
	}
	out := make([]repository.EstadoStat, 0, len(acum))
	for _, st := range acum {
		out = append(out, *st)
	}
	return out, nil
}

// forzarEstado rewrites a row's status directly, bypassing the guard. Used to
// simulate a concurrent writer between a service's read and its write.
func (f *fakeSolicitudRepo) forzarEstado(id uint, estado model.Estado) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filas[id].Estado = estado
}

type fakeUsuarioRepo struct {
	mu       sync.Mutex
	seq      uint
	usuarios map[string]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	u.ID = f.seq
	copia := *u
	f.usuarios[u.Nombre] = &copia
	return nil
}

func (f *fakeUsuarioRepo) List(_ context.Context, equipo string) ([]model.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Usuario
	for _, u := range f.usuarios {
		if equipo != "" && u.Equipo != equipo {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeUsuarioRepo) FindByNombre(_ context.Context, nombre string) (*model.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.usuarios[nombre]
	if !ok {
		return &model.Usuario{}, gorm.ErrRecordNotFound
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUsuarioRepo) Delete(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for nombre, u := range f.usuarios {
		if u.ID == id {
			delete(f.usuarios, nombre)
			return true, nil
		}
	}
	return false, nil
}

type fakeProveedorRepo struct {
	mu          sync.Mutex
	seq         uint
	proveedores map[string]*model.Proveedor
}

func newFakeProveedorRepo() *fakeProveedorRepo {
	return &fakeProveedorRepo{proveedores: make(map[string]*model.Proveedor)}
}

func (f *fakeProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	p.ID = f.seq
	copia := *p
	f.proveedores[p.Nombre] = &copia
	return nil
}

func (f *fakeProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Proveedor
	for _, p := range f.proveedores {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeProveedorRepo) FindByNombre(_ context.Context, nombre string) (*model.Proveedor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proveedores[nombre]
	if !ok {
		return &model.Proveedor{}, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProveedorRepo) FindByCodigo(_ context.Context, codigo string) (*model.Proveedor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.proveedores {
		if p.Codigo != nil && *p.Codigo == codigo {
			copia := *p
			return &copia, nil
		}
	}
	return &model.Proveedor{}, gorm.ErrRecordNotFound
}
