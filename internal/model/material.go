package model

import "time"

// Material conditions. The master-data page historically offered two enum
// sets ({new, used, damaged} on the quick-add form and the full set on the
// edit form); the union is accepted here and validated at the DTO boundary.
const (
	ConditionNew          = "new"
	ConditionUsed         = "used"
	ConditionDamaged      = "damaged"
	ConditionGood         = "good"
	ConditionNeedsRepair  = "needs-repair"
	ConditionOutOfService = "out-of-service"
)

// Material is a returnable asset. Its quantity-on-hand lives directly on the
// master-data row and is decremented on order acceptance and restored on
// rejection, so it may go negative transiently.
type Material struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Description  *string
	Quantity     int `gorm:"not null;default:0"`
	SerialNumber *string
	Condition    string `gorm:"type:varchar(20);not null;default:'new'"`
	ExpiryDate   *time.Time
	AddedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time
}

func (Material) TableName() string { return "materials" }
