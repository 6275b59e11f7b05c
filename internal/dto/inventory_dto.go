package dto

// LogFilter is bound from the query string of GET /api/inventory/logs.
type LogFilter struct {
	ProductID string `form:"product_id" validate:"omitempty,uuid"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
}

// InventoryLogResponse is one ledger row enriched with the product name.
type InventoryLogResponse struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ChangeAmount int    `json:"change_amount"`
	Note         string `json:"note"`
	CreatedAt    string `json:"created_at"`
}
