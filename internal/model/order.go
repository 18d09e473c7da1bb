package model

import (
	"time"

	"github.com/google/uuid"
)

// Domain tags an order with the inventory it draws from.
type Domain string

const (
	DomainMedication Domain = "medication"
	DomainMaterial   Domain = "material"
)

// OrderState is the lifecycle of an order: pending → accepted | rejected.
// Once non-pending the row is never edited again by this service.
type OrderState string

const (
	OrderPending  OrderState = "pending"
	OrderAccepted OrderState = "accepted"
	OrderRejected OrderState = "rejected"
)

// Order is the domain-neutral view the reconciliation workflow operates on.
// Repositories convert their table rows into this shape at the boundary, so
// there is exactly one conversion point per domain.
type Order struct {
	ID          int64
	Domain      Domain
	RequesterID uuid.UUID
	ItemID      int64
	SupplierID  *int64
	Quantity    int
	State       OrderState
	OrderedAt   time.Time
}

// MedicationOrder is the GORM row for medication orders.
type MedicationOrder struct {
	ID          int64     `gorm:"primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	StockID     int64     `gorm:"not null;index"`
	Quantity    int       `gorm:"not null"`
	State       string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	OrderedAt   time.Time `gorm:"autoCreateTime"`
}

func (MedicationOrder) TableName() string { return "medication_orders" }

// MaterialOrder is the GORM row for material orders. Unlike medication orders
// it also carries the supplier the material is requested from.
type MaterialOrder struct {
	ID          int64     `gorm:"primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	MaterialID  int64     `gorm:"not null;index"`
	SupplierID  *int64    `gorm:"index"`
	Quantity    int       `gorm:"not null"`
	State       string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	OrderedAt   time.Time `gorm:"autoCreateTime"`
}

func (MaterialOrder) TableName() string { return "material_orders" }
