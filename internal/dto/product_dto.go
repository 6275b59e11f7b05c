package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Stock    int             `json:"stock"    validate:"min=0"`
	Category string          `json:"category"`
	Image    *string         `json:"image"`
}

// UpdateProductRequest is a strict full replacement: name, price and
// category must always be supplied. Stock is deliberately absent — stock
// only moves through the adjustment endpoint and sales, so that every
// mutation lands in the inventory log.
type UpdateProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Category string          `json:"category"`
	Image    *string         `json:"image"`
}

type AdjustStockRequest struct {
	ChangeAmount int    `json:"change_amount" validate:"required"`
	Note         string `json:"note"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /api/products.
// Active: "false" = inactive only, "all" = everything, default = active only.
type ProductFilter struct {
	Category string `form:"category"`
	Active   string `form:"active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Category  string          `json:"category"`
	Image     *string         `json:"image"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at"`
}

type AdjustStockResponse struct {
	Message  string `json:"message"`
	NewStock int    `json:"new_stock"`
}
