package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	// PaymentMethod defaults to "cash" when unspecified.
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=cash card ewallet"`
	ReferenceNo   *string `json:"reference_no"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /api/sales.
type SaleFilter struct {
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	ReferenceNo   *string            `json:"reference_no"`
	CashierName   string             `json:"cashier_name,omitempty"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     string             `json:"created_at"`
}
