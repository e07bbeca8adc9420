package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/model"
	"github.com/chebellamachina/VC-LM/internal/repository"
	"github.com/chebellamachina/VC-LM/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const motivoRechazoPorDefecto = "Sin motivo especificado"

type SolicitudService interface {
	Crear(ctx context.Context, req dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error)
	Listar(ctx context.Context, estado, orden string) ([]dto.SolicitudResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.SolicitudResponse, error)
	Aprobar(ctx context.Context, id uint, aprobador string) error
	Rechazar(ctx context.Context, id uint, aprobador string, motivo *string) error
	MarcarEnProceso(ctx context.Context, id uint) error
	Completar(ctx context.Context, id uint, comprobante *string) error
	GuardarNotas(ctx context.Context, id uint, notas string) error
}

type solicitudService struct {
	repo          repository.SolicitudRepository
	proveedorRepo repository.ProveedorRepository
	usuarioRepo   repository.UsuarioRepository
	dispatcher    *worker.Dispatcher // nil in tests; notifications become no-ops
	rdb           *redis.Client      // nil in tests; cache invalidation becomes a no-op
}

func NewSolicitudService(
	repo repository.SolicitudRepository,
	proveedorRepo repository.ProveedorRepository,
	usuarioRepo repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
) SolicitudService {
	return &solicitudService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		usuarioRepo:   usuarioRepo,
		dispatcher:    dispatcher,
		rdb:           rdb,
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *solicitudService) Crear(ctx context.Context, req dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error) {
	// The HTTP layer already ran validator tags; this re-check keeps the
	// contract at the engine boundary for non-HTTP callers.
	if err := validarCampos(req); err != nil {
		return nil, err
	}

	sol := &model.SolicitudPago{
		ProveedorNombre:   req.ProveedorNombre,
		ProveedorCodigo:   req.ProveedorCodigo,
		OrdenCompra:       req.OrdenCompra,
		TipoNP:            req.TipoNP,
		NumeroNP:          req.NumeroNP,
		Monto:             req.Monto,
		TipoPago:          req.TipoPago,
		MetodoPago:        req.MetodoPago,
		PlazoPago:         req.PlazoPago,
		FechaPagoAcordada: req.FechaPagoAcordada,
		AdjuntoMockup:     req.AdjuntoMockup,
		AdjuntoFactura:    req.AdjuntoFactura,
		SolicitadoPor:     req.SolicitadoPor,
		Estado:            model.EstadoPendiente,
	}
	if err := s.repo.Create(ctx, sol); err != nil {
		return nil, err
	}

	s.registrarProveedorImplicito(ctx, req)
	s.invalidarStats(ctx)

	resp := toSolicitudResponse(sol)
	return &resp, nil
}

func validarCampos(req dto.CrearSolicitudRequest) error {
	switch {
	case req.ProveedorNombre == "":
		return fmt.Errorf("%w: falta proveedor_nombre", ErrValidacion)
	case req.NumeroNP == "":
		return fmt.Errorf("%w: falta numero_np", ErrValidacion)
	case req.TipoPago == "":
		return fmt.Errorf("%w: falta tipo_pago", ErrValidacion)
	case req.MetodoPago == "":
		return fmt.Errorf("%w: falta metodo_pago", ErrValidacion)
	case req.SolicitadoPor == "":
		return fmt.Errorf("%w: falta solicitado_por", ErrValidacion)
	case !req.Monto.IsPositive():
		return fmt.Errorf("%w: el monto debe ser mayor a cero", ErrValidacion)
	}
	return nil
}

// registrarProveedorImplicito keeps the provider catalog in sync with the
// form: a request naming an unknown provider registers it on the fly.
// Best effort; a race with an explicit registration is not an error.
func (s *solicitudService) registrarProveedorImplicito(ctx context.Context, req dto.CrearSolicitudRequest) {
	if _, err := s.proveedorRepo.FindByNombre(ctx, req.ProveedorNombre); err == nil {
		return
	}
	p := &model.Proveedor{Nombre: req.ProveedorNombre, Codigo: req.ProveedorCodigo}
	if err := s.proveedorRepo.Create(ctx, p); err != nil {
		log.Warn().Err(err).Str("proveedor", req.ProveedorNombre).Msg("registro implícito de proveedor falló")
	}
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

func (s *solicitudService) Listar(ctx context.Context, estado, orden string) ([]dto.SolicitudResponse, error) {
	filtro := model.Estado(estado)
	if estado != "" && !filtro.Valido() {
		return nil, fmt.Errorf("%w: estado desconocido %q", ErrValidacion, estado)
	}
	solicitudes, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}

	// The store contract is newest-first; the other orders are a display
	// convenience applied here.
	switch orden {
	case "antiguos":
		sort.SliceStable(solicitudes, func(i, j int) bool {
			return solicitudes[i].CreatedAt.Before(solicitudes[j].CreatedAt)
		})
	case "monto_desc":
		sort.SliceStable(solicitudes, func(i, j int) bool {
			return solicitudes[i].Monto.GreaterThan(solicitudes[j].Monto)
		})
	case "monto_asc":
		sort.SliceStable(solicitudes, func(i, j int) bool {
			return solicitudes[i].Monto.LessThan(solicitudes[j].Monto)
		})
	}

	out := make([]dto.SolicitudResponse, 0, len(solicitudes))
	for i := range solicitudes {
		out = append(out, toSolicitudResponse(&solicitudes[i]))
	}
	return out, nil
}

func (s *solicitudService) Obtener(ctx context.Context, id uint) (*dto.SolicitudResponse, error) {
	sol, err := s.cargar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSolicitudResponse(sol)
	return &resp, nil
}

// ── Transiciones ──────────────────────────────────────────────────────────────

func (s *solicitudService) Aprobar(ctx context.Context, id uint, aprobador string) error {
	sol, err := s.cargar(ctx, id)
	if err != nil {
		return err
	}
	if err := verificarTransicion(sol.Estado, model.EstadoAprobadoCFO); err != nil {
		return err
	}

	aprobado := true
	ahora := time.Now()
	if err := s.aplicar(ctx, sol, model.EstadoAprobadoCFO, repository.CamposEstado{
		AprobadoCFO:    &aprobado,
		AprobadoCFOPor: &aprobador,
		AprobadoCFOEn:  &ahora,
	}); err != nil {
		return err
	}

	log.Info().Uint("solicitud_id", id).Str("aprobador", aprobador).Msg("solicitud aprobada por CFO")
	return nil
}

func (s *solicitudService) Rechazar(ctx context.Context, id uint, aprobador string, motivo *string) error {
	sol, err := s.cargar(ctx, id)
	if err != nil {
		return err
	}
	if err := verificarTransicion(sol.Estado, model.EstadoRechazado); err != nil {
		return err
	}

	texto := motivoRechazoPorDefecto
	if motivo != nil && *motivo != "" {
		texto = *motivo
	}
	// Legacy note format; existing stored data depends on it verbatim.
	notas := "Rechazado por CFO: " + texto
	if sol.NotasAdmin != nil && *sol.NotasAdmin != "" {
		notas = *sol.NotasAdmin + " | " + notas
	}

	aprobado := false
	ahora := time.Now()
	if err := s.aplicar(ctx, sol, model.EstadoRechazado, repository.CamposEstado{
		NotasAdmin:     &notas,
		AprobadoCFO:    &aprobado,
		AprobadoCFOPor: &aprobador,
		AprobadoCFOEn:  &ahora,
	}); err != nil {
		return err
	}

	s.notificar(ctx, sol,
		fmt.Sprintf("Solicitud de pago #%d rechazada", id),
		fmt.Sprintf("Tu solicitud de pago a %s por %s fue rechazada.\nMotivo: %s",
			sol.ProveedorNombre, sol.Monto.StringFixed(2), texto))
	log.Info().Uint("solicitud_id", id).Str("aprobador", aprobador).Msg("solicitud rechazada por CFO")
	return nil
}

func (s *solicitudService) MarcarEnProceso(ctx context.Context, id uint) error {
	sol, err := s.cargar(ctx, id)
	if err != nil {
		return err
	}
	if err := verificarTransicion(sol.Estado, model.EstadoEnProceso); err != nil {
		return err
	}
	return s.aplicar(ctx, sol, model.EstadoEnProceso, repository.CamposEstado{})
}

func (s *solicitudService) Completar(ctx context.Context, id uint, comprobante *string) error {
	sol, err := s.cargar(ctx, id)
	if err != nil {
		return err
	}
	if err := verificarTransicion(sol.Estado, model.EstadoCompletado); err != nil {
		return err
	}

	if err := s.aplicar(ctx, sol, model.EstadoCompletado, repository.CamposEstado{
		AdjuntoComprobante: comprobante,
	}); err != nil {
		return err
	}

	s.notificar(ctx, sol,
		fmt.Sprintf("Solicitud de pago #%d completada", id),
		fmt.Sprintf("El pago a %s por %s fue ejecutado por Tesorería.",
			sol.ProveedorNombre, sol.Monto.StringFixed(2)))
	log.Info().Uint("solicitud_id", id).Msg("pago completado")
	return nil
}

// GuardarNotas overwrites notas_admin verbatim in any state. It re-applies the
// current status to satisfy the update contract and never touches
// completed_at or the CFO fields.
func (s *solicitudService) GuardarNotas(ctx context.Context, id uint, notas string) error {
	sol, err := s.cargar(ctx, id)
	if err != nil {
		return err
	}
	return s.aplicar(ctx, sol, sol.Estado, repository.CamposEstado{
		NotasAdmin: &notas,
	})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *solicitudService) cargar(ctx context.Context, id uint) (*model.SolicitudPago, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: solicitud %d", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return sol, nil
}

func verificarTransicion(actual, destino model.Estado) error {
	if !actual.PuedeTransicionarA(destino) {
		return fmt.Errorf("%w: %s → %s", ErrTransicionInvalida, actual, destino)
	}
	return nil
}

// aplicar runs the guarded write. Zero rows affected after a passing
// pre-check means another caller won the race; surfaced as ErrConflicto,
// never silently re-applied.
func (s *solicitudService) aplicar(ctx context.Context, sol *model.SolicitudPago, hacia model.Estado, campos repository.CamposEstado) error {
	filas, err := s.repo.UpdateEstado(ctx, sol.ID, sol.Estado, hacia, campos)
	if err != nil {
		return err
	}
	if filas == 0 {
		return fmt.Errorf("%w: solicitud %d ya no está en estado %s", ErrConflicto, sol.ID, sol.Estado)
	}
	s.invalidarStats(ctx)
	return nil
}

// notificar enqueues a best-effort email to the requester. Users without a
// configured email simply don't get notified.
func (s *solicitudService) notificar(ctx context.Context, sol *model.SolicitudPago, asunto, cuerpo string) {
	if s.dispatcher == nil {
		return
	}
	usuario, err := s.usuarioRepo.FindByNombre(ctx, sol.SolicitadoPor)
	if err != nil || usuario.Email == nil || *usuario.Email == "" {
		return
	}
	payload := worker.NotificacionPayload{Para: *usuario.Email, Asunto: asunto, Cuerpo: cuerpo}
	if err := s.dispatcher.EncolarNotificacion(ctx, payload); err != nil {
		log.Warn().Err(err).Uint("solicitud_id", sol.ID).Msg("no se pudo encolar la notificación")
	}
}

func (s *solicitudService) invalidarStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de stats")
	}
}

func toSolicitudResponse(sol *model.SolicitudPago) dto.SolicitudResponse {
	resp := dto.SolicitudResponse{
		ID:                 sol.ID,
		ProveedorNombre:    sol.ProveedorNombre,
		ProveedorCodigo:    sol.ProveedorCodigo,
		OrdenCompra:        sol.OrdenCompra,
		TipoNP:             sol.TipoNP,
		NumeroNP:           sol.NumeroNP,
		Monto:              sol.Monto,
		TipoPago:           sol.TipoPago,
		MetodoPago:         sol.MetodoPago,
		PlazoPago:          sol.PlazoPago,
		FechaPagoAcordada:  sol.FechaPagoAcordada,
		AdjuntoMockup:      sol.AdjuntoMockup,
		AdjuntoFactura:     sol.AdjuntoFactura,
		SolicitadoPor:      sol.SolicitadoPor,
		Estado:             string(sol.Estado),
		AprobadoCFO:        sol.AprobadoCFO,
		AprobadoCFOPor:     sol.AprobadoCFOPor,
		NotasAdmin:         sol.NotasAdmin,
		AdjuntoComprobante: sol.AdjuntoComprobante,
		CreatedAt:          sol.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          sol.UpdatedAt.Format(time.RFC3339),
	}
	if sol.AprobadoCFOEn != nil {
		t := sol.AprobadoCFOEn.Format(time.RFC3339)
		resp.AprobadoCFOEn = &t
	}
	if sol.CompletedAt != nil {
		t := sol.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &t
	}
	return resp
}
