package model

import "time"

// Supplier is an independent CRUD entity; no relation to orders or materials
// is enforced at the schema level.
type Supplier struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Address   string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     string `gorm:"not null"`
	Website   string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
