package dto

import "github.com/shopspring/decimal"

// ReportFilter is the shared date-range filter for all report endpoints.
// Both bounds are inclusive; an empty filter means "all time".
type ReportFilter struct {
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
}

// DailySalesRow aggregates one calendar day of sales.
type DailySalesRow struct {
	Date         string          `json:"date"`
	TotalSales   int64           `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AverageSale  decimal.Decimal `json:"average_sale"`
}

// HourlySalesRow is one of the 24 buckets returned by the hourly report.
// Buckets without activity are synthesized with zero values.
type HourlySalesRow struct {
	Hour             int             `json:"hour"`
	TransactionCount int64           `json:"transaction_count"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
}

// PaymentMethodRow gives the distribution of one payment method.
// Percentage is the method's share of transaction count, rounded to 2 dp.
type PaymentMethodRow struct {
	PaymentMethod    string          `json:"payment_method"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Percentage       decimal.Decimal `json:"percentage"`
}

// CategorySalesRow aggregates line items per product category.
type CategorySalesRow struct {
	Category      string          `json:"category"`
	ItemsSold     int64           `json:"items_sold"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}
