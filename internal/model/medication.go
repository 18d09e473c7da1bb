package model

import "time"

// MedicationStock is the quantity-on-hand record for one medication.
// Quantity is mutated only by order reconciliation or a direct admin edit.
type MedicationStock struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Quantity  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MedicationStock) TableName() string { return "medication_stocks" }
