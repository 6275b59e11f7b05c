package handler

import (
	"net/http"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/apierror"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportsHandler serves the read-only aggregation endpoints under /api/sales.
type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) bindFilter(c *gin.Context) (dto.ReportFilter, bool) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return filter, false
	}
	return filter, true
}

func (h *ReportsHandler) DailySales(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.DailySales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) HourlySales(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.HourlySales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) PaymentAnalytics(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.PaymentAnalytics(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) CategorySales(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.CategorySales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
