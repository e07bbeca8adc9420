package dto

import "github.com/shopspring/decimal"

type EstadoStatResponse struct {
	Cantidad int64           `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// CalendarioDia aggregates the scheduled payments of one calendar date.
type CalendarioDia struct {
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

type CalendarioResponse struct {
	Mes         int                      `json:"mes"`
	Anio        int                      `json:"anio"`
	TotalMes    decimal.Decimal          `json:"total_mes"`
	CantidadMes int                      `json:"cantidad_mes"`
	// Dias keys are "2006-01-02"
	Dias map[string]CalendarioDia `json:"dias"`
}

type ProximoPagoResponse struct {
	Solicitud     SolicitudResponse `json:"solicitud"`
	Fecha         string            `json:"fecha"`
	DiasRestantes int               `json:"dias_restantes"`
	// Urgencia: alta (≤2 días) | media (≤4) | baja
	Urgencia string `json:"urgencia"`
}

type BucketCashflow struct {
	Etiqueta string          `json:"etiqueta"`
	Total    decimal.Decimal `json:"total"`
	Cantidad int             `json:"cantidad"`
}

type ProyeccionCashflowResponse struct {
	Unidad           string           `json:"unidad"` // semana | mes
	Buckets          []BucketCashflow `json:"buckets"`
	TotalSinFecha    decimal.Decimal  `json:"total_sin_fecha"`
	CantidadSinFecha int              `json:"cantidad_sin_fecha"`
}

type PagoAcumuladoResponse struct {
	Fecha     string          `json:"fecha"`
	Monto     decimal.Decimal `json:"monto"`
	Acumulado decimal.Decimal `json:"acumulado"`
	Proveedor string          `json:"proveedor"`
}
