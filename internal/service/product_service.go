package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID, hard bool) error
	AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.AdjustStockResponse, error)
}

type productService struct {
	repo    repository.ProductRepository
	logRepo repository.InventoryLogRepository
}

func NewProductService(repo repository.ProductRepository, logRepo repository.InventoryLogRepository) ProductService {
	return &productService{repo: repo, logRepo: logRepo}
}

// Create inserts the product and, when it starts with positive stock,
// appends the matching "Initial stock" ledger row in the same transaction
// so the one-log-per-stock-mutation invariant holds from the first unit.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Image:    req.Image,
		Active:   true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return err
		}
		if p.Stock > 0 {
			return s.logRepo.CreateTx(tx, &model.InventoryLog{
				ProductID:    p.ID,
				ChangeAmount: p.Stock,
				Note:         "Initial stock",
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *productToResponse(&products[i]))
	}
	return resp, nil
}

// Update is a strict full replacement of the mutable fields (name, price,
// category, image). Stock is never touched here — it only moves through
// AdjustStock and sales so every change lands in the inventory log.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}

	p.Name = req.Name
	p.Price = req.Price
	p.Category = req.Category
	p.Image = req.Image

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

// Delete soft-deletes by default (active=false) so historical sale items
// keep a valid product reference. hard=true removes the row physically and
// is rejected with a conflict while any sale item still points at it.
func (s *productService) Delete(ctx context.Context, id uuid.UUID, hard bool) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return err
	}

	if !hard {
		return s.repo.SoftDelete(ctx, id)
	}

	refs, err := s.repo.CountSaleItemRefs(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: product is referenced by %d sale item(s)", ErrConflict, refs)
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: product is referenced by existing sales", ErrConflict)
		}
		return err
	}
	return nil
}

// AdjustStock applies a signed delta outside a sale context. Same locking
// and ledger discipline as the sale engine, for a single product.
func (s *productService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	note := req.Note
	if note == "" {
		note = "Stock adjustment"
	}

	var newStock int
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.repo.LockByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %s", ErrNotFound, id)
			}
			return err
		}
		if p.Stock+req.ChangeAmount < 0 {
			return fmt.Errorf("%w: product %q has %d left, cannot remove %d",
				ErrInsufficientStock, p.Name, p.Stock, -req.ChangeAmount)
		}
		if err := s.repo.UpdateStockTx(tx, id, req.ChangeAmount); err != nil {
			return err
		}
		newStock = p.Stock + req.ChangeAmount
		return s.logRepo.CreateTx(tx, &model.InventoryLog{
			ProductID:    id,
			ChangeAmount: req.ChangeAmount,
			Note:         note,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return &dto.AdjustStockResponse{Message: "Stock updated successfully", NewStock: newStock}, nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.Category,
		Image:     p.Image,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
