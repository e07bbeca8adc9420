package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/model"
	"github.com/chebellamachina/VC-LM/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	statsCacheKey = "reportes:stats"
	statsCacheTTL = 60 * time.Second

	UnidadSemana = "semana"
	UnidadMes    = "mes"
)

// ReporteService derives financial summaries from the request records.
// It holds no state of its own; every call reads fresh data.
type ReporteService interface {
	Stats(ctx context.Context) (map[string]dto.EstadoStatResponse, error)
	Calendario(ctx context.Context, mes, anio int) (*dto.CalendarioResponse, error)
	// Proximos lists active requests due within [ref, ref+dias], ascending.
	Proximos(ctx context.Context, dias int, ref time.Time) ([]dto.ProximoPagoResponse, error)
	ProyeccionCashflow(ctx context.Context, unidad string, horizonte int, desde time.Time) (*dto.ProyeccionCashflowResponse, error)
	CashflowAcumulado(ctx context.Context) ([]dto.PagoAcumuladoResponse, error)
}

type reporteService struct {
	repo repository.SolicitudRepository
	rdb  *redis.Client // nil in tests; cache becomes a pass-through
}

func NewReporteService(repo repository.SolicitudRepository, rdb *redis.Client) ReporteService {
	return &reporteService{repo: repo, rdb: rdb}
}

// ── Stats ─────────────────────────────────────────────────────────────────────

// Stats groups all requests by status. Statuses with zero requests are absent
// from the result; callers default missing buckets to {0, 0}.
func (s *reporteService) Stats(ctx context.Context) (map[string]dto.EstadoStatResponse, error) {
	if cached := s.leerStatsCache(ctx); cached != nil {
		return cached, nil
	}

	filas, err := s.repo.StatsPorEstado(ctx)
	if err != nil {
		return nil, err
	}
	stats := make(map[string]dto.EstadoStatResponse, len(filas))
	for _, f := range filas {
		stats[string(f.Estado)] = dto.EstadoStatResponse{Cantidad: f.Cantidad, Total: f.Total}
	}

	s.guardarStatsCache(ctx, stats)
	return stats, nil
}

func (s *reporteService) leerStatsCache(ctx context.Context) map[string]dto.EstadoStatResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var stats map[string]dto.EstadoStatResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return stats
}

func (s *reporteService) guardarStatsCache(ctx context.Context, stats map[string]dto.EstadoStatResponse) {
	if s.rdb == nil {
		return
	}
	if raw, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar el cache de stats")
		}
	}
}

// ── Calendario ────────────────────────────────────────────────────────────────

func (s *reporteService) Calendario(ctx context.Context, mes, anio int) (*dto.CalendarioResponse, error) {
	if mes < 1 || mes > 12 {
		return nil, fmt.Errorf("%w: mes fuera de rango", ErrValidacion)
	}

	activas, err := s.repo.ListByEstados(ctx, model.EstadosActivos())
	if err != nil {
		return nil, err
	}

	resp := &dto.CalendarioResponse{
		Mes:      mes,
		Anio:     anio,
		TotalMes: decimal.Zero,
		Dias:     make(map[string]dto.CalendarioDia),
	}
	for i := range activas {
		fecha, ok := parseFechaAcordada(activas[i].FechaPagoAcordada)
		if !ok {
			continue // unparsable dates are silently excluded
		}
		if int(fecha.Month()) != mes || fecha.Year() != anio {
			continue
		}
		clave := fecha.Format("2006-01-02")
		dia := resp.Dias[clave]
		dia.Cantidad++
		dia.Total = dia.Total.Add(activas[i].Monto)
		resp.Dias[clave] = dia

		resp.CantidadMes++
		resp.TotalMes = resp.TotalMes.Add(activas[i].Monto)
	}
	return resp, nil
}

// ── Proximos ──────────────────────────────────────────────────────────────────

func (s *reporteService) Proximos(ctx context.Context, dias int, ref time.Time) ([]dto.ProximoPagoResponse, error) {
	if dias <= 0 {
		dias = 7
	}
	hoy := soloFecha(ref)
	limite := hoy.AddDate(0, 0, dias)

	activas, err := s.repo.ListByEstados(ctx, model.EstadosActivos())
	if err != nil {
		return nil, err
	}

	var proximos []dto.ProximoPagoResponse
	for i := range activas {
		fecha, ok := parseFechaAcordada(activas[i].FechaPagoAcordada)
		if !ok {
			continue
		}
		if fecha.Before(hoy) || fecha.After(limite) {
			continue
		}
		restantes := int(fecha.Sub(hoy).Hours() / 24)
		proximos = append(proximos, dto.ProximoPagoResponse{
			Solicitud:     toSolicitudResponse(&activas[i]),
			Fecha:         fecha.Format("2006-01-02"),
			DiasRestantes: restantes,
			Urgencia:      clasificarUrgencia(restantes),
		})
	}

	sort.SliceStable(proximos, func(i, j int) bool {
		if proximos[i].Fecha != proximos[j].Fecha {
			return proximos[i].Fecha < proximos[j].Fecha
		}
		return proximos[i].Solicitud.ID < proximos[j].Solicitud.ID
	})
	return proximos, nil
}

// clasificarUrgencia: alta ≤ 2 días, media ≤ 4, baja el resto.
func clasificarUrgencia(dias int) string {
	switch {
	case dias <= 2:
		return "alta"
	case dias <= 4:
		return "media"
	default:
		return "baja"
	}
}

// ── Proyección de cashflow ────────────────────────────────────────────────────

func (s *reporteService) ProyeccionCashflow(ctx context.Context, unidad string, horizonte int, desde time.Time) (*dto.ProyeccionCashflowResponse, error) {
	if unidad != UnidadSemana && unidad != UnidadMes {
		return nil, fmt.Errorf("%w: unidad desconocida %q", ErrValidacion, unidad)
	}
	if horizonte <= 0 {
		if unidad == UnidadSemana {
			horizonte = 8
		} else {
			horizonte = 6
		}
	}

	activas, err := s.repo.ListByEstados(ctx, model.EstadosActivos())
	if err != nil {
		return nil, err
	}

	type pagoFechado struct {
		fecha time.Time
		monto decimal.Decimal
	}
	var conFecha []pagoFechado
	resp := &dto.ProyeccionCashflowResponse{Unidad: unidad, TotalSinFecha: decimal.Zero}
	for i := range activas {
		if fecha, ok := parseFechaAcordada(activas[i].FechaPagoAcordada); ok {
			conFecha = append(conFecha, pagoFechado{fecha: fecha, monto: activas[i].Monto})
		} else {
			// No agreed date, or one that doesn't parse: reported separately,
			// never dropped on the floor.
			resp.TotalSinFecha = resp.TotalSinFecha.Add(activas[i].Monto)
			resp.CantidadSinFecha++
		}
	}

	hoy := soloFecha(desde)
	for i := 0; i < horizonte; i++ {
		var inicio, fin time.Time
		var etiqueta string
		if unidad == UnidadSemana {
			inicio = hoy.AddDate(0, 0, 7*i)
			fin = inicio.AddDate(0, 0, 6)
			etiqueta = fmt.Sprintf("Sem %d: %s - %s", i+1, inicio.Format("02/01"), fin.Format("02/01"))
		} else {
			// Bucket i is the full calendar month of hoy+i months, so the
			// first bucket includes days of the current month already past.
			mesRef := hoy.AddDate(0, i, 0)
			inicio = time.Date(mesRef.Year(), mesRef.Month(), 1, 0, 0, 0, 0, time.UTC)
			fin = inicio.AddDate(0, 1, -1)
			etiqueta = mesRef.Format("January 2006")
		}

		bucket := dto.BucketCashflow{Etiqueta: etiqueta, Total: decimal.Zero}
		for _, p := range conFecha {
			if !p.fecha.Before(inicio) && !p.fecha.After(fin) {
				bucket.Total = bucket.Total.Add(p.monto)
				bucket.Cantidad++
			}
		}
		resp.Buckets = append(resp.Buckets, bucket)
	}
	return resp, nil
}

// ── Cashflow acumulado ────────────────────────────────────────────────────────

// CashflowAcumulado is a prefix-sum scan over the dated active requests in
// date order: acumulado[i] = acumulado[i-1] + monto[i].
func (s *reporteService) CashflowAcumulado(ctx context.Context) ([]dto.PagoAcumuladoResponse, error) {
	activas, err := s.repo.ListByEstados(ctx, model.EstadosActivos())
	if err != nil {
		return nil, err
	}

	type pagoFechado struct {
		sol   *model.SolicitudPago
		fecha time.Time
	}
	var fechados []pagoFechado
	for i := range activas {
		if fecha, ok := parseFechaAcordada(activas[i].FechaPagoAcordada); ok {
			fechados = append(fechados, pagoFechado{sol: &activas[i], fecha: fecha})
		}
	}
	sort.SliceStable(fechados, func(i, j int) bool {
		if !fechados[i].fecha.Equal(fechados[j].fecha) {
			return fechados[i].fecha.Before(fechados[j].fecha)
		}
		return fechados[i].sol.ID < fechados[j].sol.ID
	})

	acumulado := decimal.Zero
	out := make([]dto.PagoAcumuladoResponse, 0, len(fechados))
	for _, p := range fechados {
		acumulado = acumulado.Add(p.sol.Monto)
		out = append(out, dto.PagoAcumuladoResponse{
			Fecha:     p.fecha.Format("2006-01-02"),
			Monto:     p.sol.Monto,
			Acumulado: acumulado,
			Proveedor: p.sol.ProveedorNombre,
		})
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func parseFechaAcordada(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	fecha, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return time.Time{}, false
	}
	return fecha, true
}

func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
