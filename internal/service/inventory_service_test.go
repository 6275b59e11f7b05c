package service_test

import (
	"context"
	"testing"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLogs_FilterByProduct(t *testing.T) {
	productRepo := newStubProductRepo()
	logRepo := &stubLogRepo{}
	latte := seedProduct(t, productRepo, "Latte", 2.00, 5)
	muffin := seedProduct(t, productRepo, "Muffin", 1.75, 8)

	logRepo.logs = []model.InventoryLog{
		{ID: uuid.New(), ProductID: latte.ID, ChangeAmount: 5, Note: "Initial stock"},
		{ID: uuid.New(), ProductID: muffin.ID, ChangeAmount: 8, Note: "Initial stock"},
		{ID: uuid.New(), ProductID: latte.ID, ChangeAmount: -2, Note: "Sale #x"},
	}
	svc := service.NewInventoryService(logRepo, productRepo)

	all, err := svc.ListLogs(context.Background(), dto.LogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	latteOnly, err := svc.ListLogs(context.Background(), dto.LogFilter{ProductID: latte.ID.String()})
	require.NoError(t, err)
	require.Len(t, latteOnly, 2)
	for _, l := range latteOnly {
		assert.Equal(t, latte.ID.String(), l.ProductID)
	}
}

func TestLowStock_ThresholdInclusive(t *testing.T) {
	productRepo := newStubProductRepo()
	seedProduct(t, productRepo, "Nearly Out", 2.00, 3)
	seedProduct(t, productRepo, "At Threshold", 2.00, 10)
	seedProduct(t, productRepo, "Well Stocked", 2.00, 50)
	hidden := seedProduct(t, productRepo, "Inactive Low", 2.00, 1)
	hidden.Active = false

	svc := service.NewInventoryService(&stubLogRepo{}, productRepo)

	low, err := svc.LowStock(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, low, 2)
	for _, p := range low {
		assert.LessOrEqual(t, p.Stock, 10)
		assert.True(t, p.Active)
	}
}
