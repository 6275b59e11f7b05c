package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is the only column with a concurrency
// hazard: it is mutated exclusively inside sale / adjustment transactions
// that hold a row lock, and must never go below zero in a committed state.
type Product struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string          `gorm:"index;not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock    int             `gorm:"not null;default:0"`
	Category string
	Image    *string
	// Active=false is a soft delete: the row stays to preserve FK integrity
	// with historical sale_items.
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
