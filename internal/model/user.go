package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles are compared by equality; RoleAdministrator is the privileged literal
// that unlocks accept/reject and master-data writes.
const (
	RoleAdministrator = "administrator"
	RoleStaff         = "staff"
)

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
