package repository

import (
	"context"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"

	"gorm.io/gorm"
)

// InventoryLogRepository appends to and reads the stock ledger.
// There is intentionally no update or delete: the log is append-only.
type InventoryLogRepository interface {
	CreateTx(tx *gorm.DB, l *model.InventoryLog) error
	List(ctx context.Context, filter dto.LogFilter) ([]model.InventoryLog, error)
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) CreateTx(tx *gorm.DB, l *model.InventoryLog) error {
	return tx.Create(l).Error
}

func (r *inventoryLogRepo) List(ctx context.Context, filter dto.LogFilter) ([]model.InventoryLog, error) {
	var logs []model.InventoryLog
	q := r.db.WithContext(ctx).Model(&model.InventoryLog{})

	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("created_at::date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}

	err := q.Preload("Product").Order("created_at DESC").Find(&logs).Error
	return logs, err
}
