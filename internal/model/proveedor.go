package model

// Proveedor is a supplier payment requests are raised against. Created
// explicitly by an admin or implicitly the first time a request names it.
// Nombre is the de-facto join key used by the request form.
type Proveedor struct {
	ID uint `gorm:"primaryKey"`
	// Codigo is the external provider id (e.g. "PROV-001"); unique when present.
	Codigo        *string `gorm:"type:varchar(50);uniqueIndex"`
	Nombre        string  `gorm:"not null;index"`
	CondicionPago *string
}

func (Proveedor) TableName() string { return "proveedores" }
