package service

import (
	"context"
	"testing"
	"time"

	"github.com/chebellamachina/VC-LM/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoEntornoReportes() (ReporteService, SolicitudService, *fakeSolicitudRepo) {
	repo := newFakeSolicitudRepo()
	svc := NewSolicitudService(repo, newFakeProveedorRepo(), newFakeUsuarioRepo(), nil, nil)
	return NewReporteService(repo, nil), svc, repo
}

func crearConFecha(t *testing.T, svc SolicitudService, fecha *string, monto int64) uint {
	t.Helper()
	req := solicitudValida()
	req.FechaPagoAcordada = fecha
	req.Monto = decimal.NewFromInt(monto)
	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)
	return resp.ID
}

func TestStatsAgrupaPorEstado(t *testing.T) {
	reportes, svc, _ := nuevoEntornoReportes()

	crearConFecha(t, svc, nil, 100)
	crearConFecha(t, svc, nil, 250)
	id := crearConFecha(t, svc, nil, 400)
	require.NoError(t, svc.Rechazar(context.Background(), id, "CFO", nil))

	stats, err := reportes.Stats(context.Background())
	require.NoError(t, err)

	require.Contains(t, stats, "pendiente")
	assert.Equal(t, int64(2), stats["pendiente"].Cantidad)
	assert.True(t, stats["pendiente"].Total.Equal(decimal.NewFromInt(350)))

	require.Contains(t, stats, "rechazado")
	assert.Equal(t, int64(1), stats["rechazado"].Cantidad)
	assert.True(t, stats["rechazado"].Total.Equal(decimal.NewFromInt(400)))

	// No bucket for statuses without rows.
	assert.NotContains(t, stats, "completado")
}

func TestCalendarioAgrupaPorDia(t *testing.T) {
	reportes, svc, repo := nuevoEntornoReportes()

	crearConFecha(t, svc, ptr("2026-09-15"), 100)
	crearConFecha(t, svc, ptr("2026-09-15"), 200)
	crearConFecha(t, svc, ptr("2026-09-20"), 50)
	crearConFecha(t, svc, ptr("2026-10-01"), 999) // otro mes
	crearConFecha(t, svc, ptr("sin definir"), 77) // no parsea
	rechazada := crearConFecha(t, svc, ptr("2026-09-15"), 500)
	repo.forzarEstado(rechazada, model.EstadoRechazado)

	cal, err := reportes.Calendario(context.Background(), 9, 2026)
	require.NoError(t, err)

	assert.Equal(t, 9, cal.Mes)
	assert.Equal(t, 2026, cal.Anio)
	require.Contains(t, cal.Dias, "2026-09-15")
	assert.Equal(t, 2, cal.Dias["2026-09-15"].Cantidad)
	assert.True(t, cal.Dias["2026-09-15"].Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 1, cal.Dias["2026-09-20"].Cantidad)
	assert.Equal(t, 3, cal.CantidadMes)
	assert.True(t, cal.TotalMes.Equal(decimal.NewFromInt(350)))
}

func TestCalendarioMesInvalido(t *testing.T) {
	reportes, _, _ := nuevoEntornoReportes()
	_, err := reportes.Calendario(context.Background(), 13, 2026)
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestProximosClasificaUrgencia(t *testing.T) {
	reportes, svc, _ := nuevoEntornoReportes()
	hoy := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	fecha := func(dias int) *string {
		s := hoy.AddDate(0, 0, dias).Format("2006-01-02")
		return &s
	}
	crearConFecha(t, svc, fecha(0), 10)
	crearConFecha(t, svc, fecha(2), 20)
	crearConFecha(t, svc, fecha(3), 30)
	crearConFecha(t, svc, fecha(5), 40)
	crearConFecha(t, svc, fecha(9), 99)  // fuera de la ventana
	crearConFecha(t, svc, fecha(-1), 88) // vencido ayer, fuera
	crearConFecha(t, svc, nil, 77)       // sin fecha

	proximos, err := reportes.Proximos(context.Background(), 7, hoy)
	require.NoError(t, err)
	require.Len(t, proximos, 4)

	assert.Equal(t, 0, proximos[0].DiasRestantes)
	assert.Equal(t, "alta", proximos[0].Urgencia)
	assert.Equal(t, "alta", proximos[1].Urgencia)
	assert.Equal(t, "media", proximos[2].Urgencia)
	assert.Equal(t, "baja", proximos[3].Urgencia)

	// Ordered by date ascending.
	for i := 1; i < len(proximos); i++ {
		assert.LessOrEqual(t, proximos[i-1].Fecha, proximos[i].Fecha)
	}
}

func TestProximosVentanaPorDefecto(t *testing.T) {
	reportes, svc, _ := nuevoEntornoReportes()
	hoy := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	s := hoy.AddDate(0, 0, 6).Format("2006-01-02")
	crearConFecha(t, svc, &s, 10)

	proximos, err := reportes.Proximos(context.Background(), 0, hoy)
	require.NoError(t, err)
	assert.Len(t, proximos, 1)
}

func TestProyeccionSemanal(t *testing.T) {
	reportes, svc, _ := nuevoEntornoReportes()
	hoy := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	fecha := func(dias int) *string {
		s := hoy.AddDate(0, 0, dias).Format("2006-01-02")
		return &s
	}
	crearConFecha(t, svc, fecha(0), 100)
	crearConFecha(t, svc, fecha(6), 50)   // última celda de la semana 1
	crearConFecha(t, svc, fecha(7), 200)  // semana 2
	crearConFecha(t, svc, fecha(60), 999) // más allá de 8 semanas
	crearConFecha(t, svc, nil, 300)
	crearConFecha(t, svc, ptr("proximamente"), 40)

	proy, err := reportes.ProyeccionCashflow(context.Background(), UnidadSemana, 0, hoy)
	require.NoError(t, err)

	require.Len(t, proy.Buckets, 8)
	assert.Equal(t, "Sem 1: 25/08 - 31/08", proy.Buckets[0].Etiqueta)
	assert.True(t, proy.Buckets[0].Total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, proy.Buckets[0].Cantidad)
	assert.True(t, proy.Buckets[1].Total.Equal(decimal.NewFromInt(200)))

	assert.Equal(t, 2, proy.CantidadSinFecha)
	assert.True(t, proy.TotalSinFecha.Equal(decimal.NewFromInt(340)))
}

func TestProyeccionMensualCubreElMesCompleto(t *testing.T) {
	reportes, svc, _ := nuevoEntornoReportes()
	hoy := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	// Earlier in the current month: the first bucket is the whole calendar
	// month, so this still counts.
	crearConFecha(t, svc, ptr("2026-08-03"), 120)
	crearConFecha(t, svc, ptr("2026-09-10"), 80)
	crearConFecha(t, svc, ptr("2027-03-01"), 999) // fuera de 6 meses

	proy, err := reportes.ProyeccionCashflow(context.Background(), UnidadMes, 0, hoy)
	require.NoError(t, err)

	require.Len(t, proy.Buckets, 6)
	assert.Equal(t, "August 2026", proy.Buckets[0].Etiqueta)
	assert.True(t, proy.Buckets[0].Total.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "September 2026", proy.Buckets[1].Etiqueta)
	assert.True(t, proy.Buckets[1].Total.Equal(decimal.NewFromInt(80)))
	assert.True(t, proy.Buckets[5].Total.IsZero())
}

func TestProyeccionUnidadInvalida(t *testing.T) {
	reportes, _, _ := nuevoEntornoReportes()
	_, err := reportes.ProyeccionCashflow(context.Background(), "trimestre", 0, time.Now())
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestCashflowAcumulado(t *testing.T) {
	reportes, svc, _ := nuevoEntornoReportes()

	crearConFecha(t, svc, ptr("2026-09-10"), 200)
	crearConFecha(t, svc, ptr("2026-09-01"), 100)
	crearConFecha(t, svc, ptr("2026-09-20"), 50)
	crearConFecha(t, svc, nil, 999) // sin fecha, excluido

	filas, err := reportes.CashflowAcumulado(context.Background())
	require.NoError(t, err)
	require.Len(t, filas, 3)

	assert.Equal(t, "2026-09-01", filas[0].Fecha)
	assert.True(t, filas[0].Acumulado.Equal(decimal.NewFromInt(100)))
	assert.True(t, filas[1].Acumulado.Equal(decimal.NewFromInt(300)))
	assert.True(t, filas[2].Acumulado.Equal(decimal.NewFromInt(350)))

	// Running total never decreases.
	for i := 1; i < len(filas); i++ {
		assert.True(t, filas[i].Acumulado.GreaterThanOrEqual(filas[i-1].Acumulado))
	}
}
