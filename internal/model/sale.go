package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is immutable once committed. It is created only by the sale
// transaction engine together with its items and the matching inventory
// logs, all inside a single transaction.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"not null;default:'cash'"`
	ReferenceNo   *string
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"index"`

	Items []SaleItem `gorm:"foreignKey:SaleID"`
	User  *User      `gorm:"foreignKey:UserID"`
}

// SaleItem is owned exclusively by its parent Sale. Subtotal is the product
// price captured at sale time multiplied by quantity — later price changes
// do not rewrite history.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
