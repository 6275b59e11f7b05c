package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values accepted in users.role and JWT claims.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User stores staff accounts with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'cashier'"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
