package repository

import (
	"context"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"

	"gorm.io/gorm"
)

// ReportRepository runs the read-only aggregate queries behind the report
// endpoints. Raw SQL keeps the grouping/rounding semantics explicit; the
// result rows scan straight into the response DTOs.
type ReportRepository interface {
	DailySales(ctx context.Context, filter dto.ReportFilter) ([]dto.DailySalesRow, error)
	HourlySales(ctx context.Context, filter dto.ReportFilter) ([]dto.HourlySalesRow, error)
	PaymentTotals(ctx context.Context, filter dto.ReportFilter) ([]dto.PaymentMethodRow, error)
	CategorySales(ctx context.Context, filter dto.ReportFilter) ([]dto.CategorySalesRow, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) salesInRange(ctx context.Context, filter dto.ReportFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Table("sales")
	if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("created_at::date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	return q
}

func (r *reportRepo) DailySales(ctx context.Context, filter dto.ReportFilter) ([]dto.DailySalesRow, error) {
	var rows []dto.DailySalesRow
	err := r.salesInRange(ctx, filter).
		Select(`to_char(created_at::date, 'YYYY-MM-DD') AS date,
			COUNT(*) AS total_sales,
			COALESCE(SUM(total), 0) AS total_revenue,
			COALESCE(ROUND(AVG(total), 2), 0) AS average_sale`).
		Group("created_at::date").
		Order("created_at::date DESC").
		Scan(&rows).Error
	return rows, err
}

// HourlySales returns only the hours that had activity; the service layer
// zero-fills the remaining buckets so callers always see 24 entries.
func (r *reportRepo) HourlySales(ctx context.Context, filter dto.ReportFilter) ([]dto.HourlySalesRow, error) {
	var rows []dto.HourlySalesRow
	err := r.salesInRange(ctx, filter).
		Select(`EXTRACT(HOUR FROM created_at)::int AS hour,
			COUNT(*) AS transaction_count,
			COALESCE(SUM(total), 0) AS total_revenue`).
		Group("EXTRACT(HOUR FROM created_at)").
		Order("hour").
		Scan(&rows).Error
	return rows, err
}

// PaymentTotals omits the percentage column — the service derives shares
// from the counts so the query stays a single pass over the table.
func (r *reportRepo) PaymentTotals(ctx context.Context, filter dto.ReportFilter) ([]dto.PaymentMethodRow, error) {
	var rows []dto.PaymentMethodRow
	err := r.salesInRange(ctx, filter).
		Select(`payment_method,
			COUNT(*) AS transaction_count,
			COALESCE(SUM(total), 0) AS total_amount`).
		Group("payment_method").
		Order("total_amount DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) CategorySales(ctx context.Context, filter dto.ReportFilter) ([]dto.CategorySalesRow, error) {
	var rows []dto.CategorySalesRow
	q := r.db.WithContext(ctx).Table("sale_items si").
		Joins("JOIN sales s ON si.sale_id = s.id").
		Joins("JOIN products p ON si.product_id = p.id")
	if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("s.created_at::date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	err := q.
		Select(`p.category,
			COUNT(si.id) AS items_sold,
			COALESCE(SUM(si.quantity), 0) AS total_quantity,
			COALESCE(SUM(si.subtotal), 0) AS total_revenue`).
		Group("p.category").
		Order("total_revenue DESC").
		Scan(&rows).Error
	return rows, err
}
