package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryLog is an append-only ledger: every stock mutation (sale,
// manual adjustment, initial stock) produces exactly one row whose
// ChangeAmount equals the stock delta. Rows are never updated or deleted.
type InventoryLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ChangeAmount int       `gorm:"not null"` // positive = stock in, negative = stock out
	Note         string
	CreatedAt    time.Time `gorm:"index"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
