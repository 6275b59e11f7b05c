package service

import (
	"context"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/repository"
)

// InventoryService exposes the read side of the stock ledger.
type InventoryService interface {
	ListLogs(ctx context.Context, filter dto.LogFilter) ([]dto.InventoryLogResponse, error)
	LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error)
}

type inventoryService struct {
	logRepo     repository.InventoryLogRepository
	productRepo repository.ProductRepository
}

func NewInventoryService(logRepo repository.InventoryLogRepository, productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{logRepo: logRepo, productRepo: productRepo}
}

func (s *inventoryService) ListLogs(ctx context.Context, filter dto.LogFilter) ([]dto.InventoryLogResponse, error) {
	logs, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		name := ""
		if l.Product != nil {
			name = l.Product.Name
		}
		resp = append(resp, dto.InventoryLogResponse{
			ID:           l.ID.String(),
			ProductID:    l.ProductID.String(),
			ProductName:  name,
			ChangeAmount: l.ChangeAmount,
			Note:         l.Note,
			CreatedAt:    l.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp, nil
}

func (s *inventoryService) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	products, err := s.productRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *productToResponse(&products[i]))
	}
	return resp, nil
}
