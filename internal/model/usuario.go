package model

// Usuario is a member of either the production team (submits payment
// requests) or the admin team (finance / treasury).
// Equipo: "produccion" | "admin"
type Usuario struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;not null"`
	Equipo string `gorm:"type:varchar(20);not null"`
	// Email is optional; status-change notifications are skipped without it.
	Email *string
}

func (Usuario) TableName() string { return "usuarios" }
