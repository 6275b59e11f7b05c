package service_test

import (
	"context"
	"testing"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductSvc() (service.ProductService, *stubProductRepo, *stubLogRepo) {
	productRepo := newStubProductRepo()
	logRepo := &stubLogRepo{}
	svc := service.NewProductService(productRepo, logRepo)
	return svc, productRepo, logRepo
}

func TestCreateProduct_InitialStockLogged(t *testing.T) {
	svc, _, logRepo := buildProductSvc()

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "House Blend",
		Price:    decimal.NewFromFloat(3.50),
		Stock:    20,
		Category: "coffee",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Stock)
	assert.True(t, resp.Active)

	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, 20, logRepo.logs[0].ChangeAmount)
	assert.Equal(t, "Initial stock", logRepo.logs[0].Note)
	assert.Equal(t, resp.ID, logRepo.logs[0].ProductID.String())
}

func TestCreateProduct_ZeroStock_NoLog(t *testing.T) {
	svc, _, logRepo := buildProductSvc()

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Preorder Beans",
		Price: decimal.NewFromFloat(12.00),
		Stock: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, logRepo.logs)
}

func TestUpdateProduct_DoesNotTouchStock(t *testing.T) {
	svc, productRepo, logRepo := buildProductSvc()
	p := seedProduct(t, productRepo, "Latte", 2.00, 7)

	resp, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		Name:     "Latte Grande",
		Price:    decimal.NewFromFloat(2.75),
		Category: "coffee",
	})
	require.NoError(t, err)
	assert.Equal(t, "Latte Grande", resp.Name)
	assert.Equal(t, "2.75", resp.Price.String())
	assert.Equal(t, 7, resp.Stock)
	// Renames and price changes never hit the inventory log.
	assert.Empty(t, logRepo.logs)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc, _, _ := buildProductSvc()
	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateProductRequest{
		Name:  "Ghost",
		Price: decimal.NewFromFloat(1.00),
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestAdjustStock_Positive(t *testing.T) {
	svc, productRepo, logRepo := buildProductSvc()
	p := seedProduct(t, productRepo, "Muffin", 1.75, 3)

	resp, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{
		ChangeAmount: 12,
		Note:         "Morning delivery",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.NewStock)
	assert.Equal(t, 15, productRepo.products[p.ID].Stock)

	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, 12, logRepo.logs[0].ChangeAmount)
	assert.Equal(t, "Morning delivery", logRepo.logs[0].Note)
}

func TestAdjustStock_DefaultNote(t *testing.T) {
	svc, productRepo, logRepo := buildProductSvc()
	p := seedProduct(t, productRepo, "Scone", 2.25, 5)

	_, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{ChangeAmount: -2})
	require.NoError(t, err)
	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, "Stock adjustment", logRepo.logs[0].Note)
	assert.Equal(t, 3, productRepo.products[p.ID].Stock)
}

func TestAdjustStock_WouldGoNegative(t *testing.T) {
	svc, productRepo, logRepo := buildProductSvc()
	p := seedProduct(t, productRepo, "Bagel", 1.50, 4)

	_, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{ChangeAmount: -5})
	require.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.ErrorContains(t, err, "Bagel")
	assert.Equal(t, 4, productRepo.products[p.ID].Stock)
	assert.Empty(t, logRepo.logs)
}

func TestAdjustStock_NotFound(t *testing.T) {
	svc, _, _ := buildProductSvc()
	_, err := svc.AdjustStock(context.Background(), uuid.New(), dto.AdjustStockRequest{ChangeAmount: 1})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteProduct_SoftByDefault(t *testing.T) {
	svc, productRepo, _ := buildProductSvc()
	p := seedProduct(t, productRepo, "Retired Roast", 5.00, 2)

	err := svc.Delete(context.Background(), p.ID, false)
	require.NoError(t, err)

	// Row still exists for FK integrity, but no longer listed by default.
	assert.False(t, productRepo.products[p.ID].Active)
	listed, err := svc.List(context.Background(), dto.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteProduct_HardWithRefs_Conflict(t *testing.T) {
	svc, productRepo, _ := buildProductSvc()
	p := seedProduct(t, productRepo, "Popular Latte", 2.00, 10)
	productRepo.saleItemRefs[p.ID] = 3

	err := svc.Delete(context.Background(), p.ID, true)
	require.ErrorIs(t, err, service.ErrConflict)
	// Product must survive the rejected hard delete.
	assert.Contains(t, productRepo.products, p.ID)
}

func TestDeleteProduct_HardWithoutRefs(t *testing.T) {
	svc, productRepo, _ := buildProductSvc()
	p := seedProduct(t, productRepo, "Typo Entry", 0.01, 0)

	err := svc.Delete(context.Background(), p.ID, true)
	require.NoError(t, err)
	assert.NotContains(t, productRepo.products, p.ID)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	svc, _, _ := buildProductSvc()
	err := svc.Delete(context.Background(), uuid.New(), false)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestListProducts_ActiveFilter(t *testing.T) {
	svc, productRepo, _ := buildProductSvc()
	seedProduct(t, productRepo, "Active One", 1.00, 1)
	inactive := seedProduct(t, productRepo, "Inactive One", 1.00, 1)
	inactive.Active = false

	active, err := svc.List(context.Background(), dto.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, active, 1)

	inactiveOnly, err := svc.List(context.Background(), dto.ProductFilter{Active: "false"})
	require.NoError(t, err)
	assert.Len(t, inactiveOnly, 1)
	assert.Equal(t, "Inactive One", inactiveOnly[0].Name)

	all, err := svc.List(context.Background(), dto.ProductFilter{Active: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
