package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/services"
)

type CurrencyHandler struct {
	*BaseHandler
	currencyService services.CurrencyService
}

func NewCurrencyHandler(base *BaseHandler, currencyService services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{
		BaseHandler:     base,
		currencyService: currencyService,
	}
}

func (h *CurrencyHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/currency/rates", h.GetRates)
}

func (h *CurrencyHandler) GetRates(c *gin.Context) {
	resp, err := h.currencyService.GetRates(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
