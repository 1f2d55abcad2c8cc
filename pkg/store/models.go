package store

import "time"

// GORM model used for persistence.
type SymptomCheckModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Symptoms  string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName pins the table name used for persisted checks.
func (SymptomCheckModel) TableName() string { return "symptom_checks" }
