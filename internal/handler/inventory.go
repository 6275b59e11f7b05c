package handler

import (
	"net/http"
	"strconv"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/apierror"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	svc              service.InventoryService
	defaultThreshold int
}

func NewInventoryHandler(svc service.InventoryService, defaultThreshold int) *InventoryHandler {
	return &InventoryHandler{svc: svc, defaultThreshold: defaultThreshold}
}

func (h *InventoryHandler) ListLogs(c *gin.Context) {
	var filter dto.LogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid filter: "+err.Error()))
		return
	}
	resp, err := h.svc.ListLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	threshold := h.defaultThreshold
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid threshold"))
			return
		}
		threshold = n
	}
	resp, err := h.svc.LowStock(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
