package service_test

import (
	"context"
	"testing"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository. The Tx methods accept
// the nil *gorm.DB that runTx passes in unit-test mode.
type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	// saleItemRefs simulates sale_items rows pointing at a product.
	saleItemRefs map[uuid.UUID]int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:     make(map[uuid.UUID]*model.Product),
		saleItemRefs: make(map[uuid.UUID]int64),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	return r.CreateTx(nil, p)
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		switch filter.Active {
		case "false":
			if p.Active {
				continue
			}
		case "all":
		default:
			if !p.Active {
				continue
			}
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) CountSaleItemRefs(_ context.Context, id uuid.UUID) (int64, error) {
	return r.saleItemRefs[id], nil
}

func (r *stubProductRepo) LowStock(_ context.Context, threshold int) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active && p.Stock <= threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) LockByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Return a snapshot, mirroring the real repo's fresh row scan: later
	// UpdateStockTx calls must not mutate the caller's copy.
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok || p.Stock+delta < 0 {
		return gorm.ErrRecordNotFound
	}
	p.Stock += delta
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubSaleRepo stores committed sales keyed by ID.
type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Items {
		s.Items[i].ID = uuid.New()
		s.Items[i].SaleID = s.ID
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubLogRepo captures appended inventory log rows for assertion.
type stubLogRepo struct {
	logs []model.InventoryLog
}

func (r *stubLogRepo) CreateTx(_ *gorm.DB, l *model.InventoryLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.logs = append(r.logs, *l)
	return nil
}

func (r *stubLogRepo) List(_ context.Context, filter dto.LogFilter) ([]model.InventoryLog, error) {
	if filter.ProductID == "" {
		return r.logs, nil
	}
	var out []model.InventoryLog
	for _, l := range r.logs {
		if l.ProductID.String() == filter.ProductID {
			out = append(out, l)
		}
	}
	return out, nil
}

var _ repository.InventoryLogRepository = (*stubLogRepo)(nil)

// stubUserRepo is an in-memory UserRepository keyed by username.
type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubReportRepo returns canned aggregation rows.
type stubReportRepo struct {
	daily    []dto.DailySalesRow
	hourly   []dto.HourlySalesRow
	payments []dto.PaymentMethodRow
	category []dto.CategorySalesRow
}

func (r *stubReportRepo) DailySales(_ context.Context, _ dto.ReportFilter) ([]dto.DailySalesRow, error) {
	return r.daily, nil
}

func (r *stubReportRepo) HourlySales(_ context.Context, _ dto.ReportFilter) ([]dto.HourlySalesRow, error) {
	return r.hourly, nil
}

func (r *stubReportRepo) PaymentTotals(_ context.Context, _ dto.ReportFilter) ([]dto.PaymentMethodRow, error) {
	return r.payments, nil
}

func (r *stubReportRepo) CategorySales(_ context.Context, _ dto.ReportFilter) ([]dto.CategorySalesRow, error) {
	return r.category, nil
}

var _ repository.ReportRepository = (*stubReportRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProduct(t *testing.T, repo *stubProductRepo, name string, price float64, stock int) *model.Product {
	t.Helper()
	p := &model.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		Category: "coffee",
		Active:   true,
	}
	repo.products[p.ID] = p
	return p
}
