package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearSolicitudRequest struct {
	ProveedorNombre string  `json:"proveedor_nombre" validate:"required"`
	ProveedorCodigo *string `json:"proveedor_codigo"`
	OrdenCompra     *string `json:"orden_compra"`
	TipoNP          string  `json:"tipo_np"     validate:"required,oneof=NPA NPV NPW NPM"`
	NumeroNP        string  `json:"numero_np"   validate:"required"`
	Monto           decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	TipoPago        string  `json:"tipo_pago"   validate:"required,oneof=total parcial"`
	MetodoPago      string  `json:"metodo_pago" validate:"required,oneof=transferencia e-cheq"`
	PlazoPago       *string `json:"plazo_pago"`
	// FechaPagoAcordada in "2006-01-02"; free text at this boundary, the
	// report views decide what parses.
	FechaPagoAcordada *string `json:"fecha_pago_acordada"`
	AdjuntoMockup     *string `json:"adjunto_mockup"`
	AdjuntoFactura    *string `json:"adjunto_factura"`
	SolicitadoPor     string  `json:"solicitado_por" validate:"required"`
}

type RechazarSolicitudRequest struct {
	Motivo *string `json:"motivo"`
}

type CompletarSolicitudRequest struct {
	AdjuntoComprobante *string `json:"adjunto_comprobante"`
}

type GuardarNotasRequest struct {
	// Notas replaces the whole field verbatim; empty clears it.
	Notas string `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SolicitudResponse struct {
	ID                 uint            `json:"id"`
	ProveedorNombre    string          `json:"proveedor_nombre"`
	ProveedorCodigo    *string         `json:"proveedor_codigo"`
	OrdenCompra        *string         `json:"orden_compra"`
	TipoNP             string          `json:"tipo_np"`
	NumeroNP           string          `json:"numero_np"`
	Monto              decimal.Decimal `json:"monto"`
	TipoPago           string          `json:"tipo_pago"`
	MetodoPago         string          `json:"metodo_pago"`
	PlazoPago          *string         `json:"plazo_pago"`
	FechaPagoAcordada  *string         `json:"fecha_pago_acordada"`
	AdjuntoMockup      *string         `json:"adjunto_mockup"`
	AdjuntoFactura     *string         `json:"adjunto_factura"`
	SolicitadoPor      string          `json:"solicitado_por"`
	Estado             string          `json:"estado"`
	AprobadoCFO        bool            `json:"aprobado_cfo"`
	AprobadoCFOPor     *string         `json:"aprobado_cfo_por"`
	AprobadoCFOEn      *string         `json:"aprobado_cfo_en"`
	NotasAdmin         *string         `json:"notas_admin"`
	AdjuntoComprobante *string         `json:"adjunto_comprobante"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
	CompletedAt        *string         `json:"completed_at"`
}
