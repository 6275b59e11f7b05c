package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService runs the read-only sales aggregations. Identical
// parameters yield identical results absent intervening writes — there is
// no state here beyond the store itself.
type ReportService interface {
	DailySales(ctx context.Context, filter dto.ReportFilter) ([]dto.DailySalesRow, error)
	HourlySales(ctx context.Context, filter dto.ReportFilter) ([]dto.HourlySalesRow, error)
	PaymentAnalytics(ctx context.Context, filter dto.ReportFilter) ([]dto.PaymentMethodRow, error)
	CategorySales(ctx context.Context, filter dto.ReportFilter) ([]dto.CategorySalesRow, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func validateRange(filter dto.ReportFilter) error {
	if (filter.StartDate == "") != (filter.EndDate == "") {
		return fmt.Errorf("%w: start_date and end_date must be supplied together", ErrValidation)
	}
	for _, d := range []string{filter.StartDate, filter.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, d)
		}
	}
	return nil
}

func (s *reportService) DailySales(ctx context.Context, filter dto.ReportFilter) ([]dto.DailySalesRow, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	rows, err := s.repo.DailySales(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.DailySalesRow{}
	}
	return rows, nil
}

// HourlySales always returns exactly 24 buckets (hours 0-23); hours with
// no transactions are synthesized with zero values.
func (s *reportService) HourlySales(ctx context.Context, filter dto.ReportFilter) ([]dto.HourlySalesRow, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	rows, err := s.repo.HourlySales(ctx, filter)
	if err != nil {
		return nil, err
	}

	byHour := make(map[int]dto.HourlySalesRow, len(rows))
	for _, row := range rows {
		byHour[row.Hour] = row
	}
	full := make([]dto.HourlySalesRow, 0, 24)
	for hour := 0; hour < 24; hour++ {
		if row, ok := byHour[hour]; ok {
			full = append(full, row)
		} else {
			full = append(full, dto.HourlySalesRow{Hour: hour, TotalRevenue: decimal.Zero})
		}
	}
	return full, nil
}

func (s *reportService) PaymentAnalytics(ctx context.Context, filter dto.ReportFilter) ([]dto.PaymentMethodRow, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	rows, err := s.repo.PaymentTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	var grandTotal int64
	for _, row := range rows {
		grandTotal += row.TransactionCount
	}
	out := make([]dto.PaymentMethodRow, 0, len(rows))
	for _, row := range rows {
		if grandTotal > 0 {
			row.Percentage = decimal.NewFromInt(row.TransactionCount * 100).
				Div(decimal.NewFromInt(grandTotal)).Round(2)
		} else {
			row.Percentage = decimal.Zero
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *reportService) CategorySales(ctx context.Context, filter dto.ReportFilter) ([]dto.CategorySalesRow, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	rows, err := s.repo.CategorySales(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.CategorySalesRow{}
	}
	return rows, nil
}
