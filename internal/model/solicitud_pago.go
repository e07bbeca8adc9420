package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SolicitudPago is a payment request submitted by production and processed by
// finance (CFO approval) and treasury (payment execution).
//
// FechaPagoAcordada is stored as free text ("2006-01-02"); legacy rows may
// carry unparsable values, which the report views skip silently.
type SolicitudPago struct {
	ID              uint    `gorm:"primaryKey"`
	ProveedorNombre string  `gorm:"not null;index"`
	ProveedorCodigo *string `gorm:"type:varchar(50)"`
	// OrdenCompra: "<OC|OCT|OCM>-<numero>", optional
	OrdenCompra *string `gorm:"type:varchar(50)"`
	// TipoNP: NPA | NPV | NPW | NPM
	TipoNP            string          `gorm:"type:varchar(5);not null"`
	NumeroNP          string          `gorm:"type:varchar(50);not null"`
	Monto             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TipoPago          string          `gorm:"type:varchar(10);not null"` // total | parcial
	MetodoPago        string          `gorm:"type:varchar(20);not null"` // transferencia | e-cheq
	PlazoPago         *string
	FechaPagoAcordada *string `gorm:"type:varchar(20)"`
	// Attachments are opaque storage keys; their bytes live in the blob store.
	AdjuntoMockup  *string
	AdjuntoFactura *string
	SolicitadoPor  string `gorm:"not null;index"`
	Estado         Estado `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	AprobadoCFO    bool   `gorm:"not null;default:false"`
	AprobadoCFOPor *string
	AprobadoCFOEn  *time.Time
	NotasAdmin     *string
	// AdjuntoComprobante is the proof-of-payment reference set on completion.
	AdjuntoComprobante *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CompletedAt        *time.Time
}

func (SolicitudPago) TableName() string { return "solicitudes_pago" }
