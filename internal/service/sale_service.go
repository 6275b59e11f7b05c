package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	CreateSale(ctx context.Context, cashierID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	logRepo     repository.InventoryLogRepository
	txTimeout   time.Duration
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
	txTimeout time.Duration,
) SaleService {
	return &saleService{
		repo:        repo,
		productRepo: productRepo,
		logRepo:     logRepo,
		txTimeout:   txTimeout,
	}
}

// CreateSale is the one multi-row atomic operation in the system:
//
//  1. Lock every product row touched by the sale (FOR UPDATE) — this
//     serializes validation and decrement against concurrent sales of the
//     same product, across server processes.
//  2. Validate stock and capture the price while holding the lock.
//  3. Insert the Sale with its SaleItems, decrement stock per item, and
//     append one InventoryLog row per item (change = -quantity).
//  4. Commit; any failure rolls back every effect.
//
// The transaction runs under a deadline so a contested lock can never be
// held indefinitely.
func (s *saleService) CreateSale(ctx context.Context, cashierID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	type line struct {
		productID uuid.UUID
		name      string
		quantity  int
		subtotal  decimal.Decimal
	}

	// A zero-line sale must never commit, regardless of caller.
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: sale requires at least one item", ErrValidation)
	}

	// Resolve ids before opening the transaction — a malformed id must not
	// cost a round trip.
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product_id %q", ErrValidation, item.ProductID)
		}
		ids = append(ids, pid)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	if s.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.txTimeout)
		defer cancel()
	}

	var sale model.Sale
	var lines []line
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		lines = lines[:0]
		total := decimal.Zero

		for i, item := range req.Items {
			p, err := s.productRepo.LockByIDTx(tx, ids[i])
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %s", ErrNotFound, item.ProductID)
				}
				return err
			}
			if !p.Active {
				return fmt.Errorf("%w: product %q is inactive", ErrValidation, p.Name)
			}
			if p.Stock < item.Quantity {
				return fmt.Errorf("%w: product %q has %d left, %d requested",
					ErrInsufficientStock, p.Name, p.Stock, item.Quantity)
			}

			subtotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(subtotal)
			lines = append(lines, line{
				productID: p.ID,
				name:      p.Name,
				quantity:  item.Quantity,
				subtotal:  subtotal,
			})
		}

		sale = model.Sale{
			Total:         total,
			PaymentMethod: paymentMethod,
			ReferenceNo:   req.ReferenceNo,
			UserID:        cashierID,
		}
		for _, l := range lines {
			sale.Items = append(sale.Items, model.SaleItem{
				ProductID: l.productID,
				Quantity:  l.quantity,
				Subtotal:  l.subtotal,
			})
		}
		if err := s.repo.CreateTx(tx, &sale); err != nil {
			return err
		}

		for _, l := range lines {
			if err := s.productRepo.UpdateStockTx(tx, l.productID, -l.quantity); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Guard rejected the decrement — cannot happen while we
					// hold the row lock, but the invariant stays enforced.
					return fmt.Errorf("%w: product %q", ErrInsufficientStock, l.name)
				}
				return err
			}
			log := &model.InventoryLog{
				ProductID:    l.productID,
				ChangeAmount: -l.quantity,
				Note:         fmt.Sprintf("Sale #%s", sale.ID),
			}
			if err := s.logRepo.CreateTx(tx, log); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.SaleResponse{
		ID:            sale.ID.String(),
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		ReferenceNo:   sale.ReferenceNo,
		CreatedAt:     sale.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   l.productID.String(),
			ProductName: l.name,
			Quantity:    l.quantity,
			Subtotal:    l.subtotal,
		})
	}
	return resp, nil
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sale %s", ErrNotFound, id)
		}
		return nil, err
	}
	return saleToResponse(sale, true), nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, *saleToResponse(&sales[i], false))
	}
	return resp, nil
}

func saleToResponse(s *model.Sale, withItems bool) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID.String(),
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		ReferenceNo:   s.ReferenceNo,
		CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if s.User != nil {
		resp.CashierName = s.User.Name
	}
	if withItems {
		for _, item := range s.Items {
			name := ""
			if item.Product != nil {
				name = item.Product.Name
			}
			resp.Items = append(resp.Items, dto.SaleItemResponse{
				ProductID:   item.ProductID.String(),
				ProductName: name,
				Quantity:    item.Quantity,
				Subtotal:    item.Subtotal,
			})
		}
	}
	return resp
}
