package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
)

type AlertHandler struct {
	*BaseHandler
	alertService services.AlertService
}

func NewAlertHandler(base *BaseHandler, alertService services.AlertService) *AlertHandler {
	return &AlertHandler{
		BaseHandler:  base,
		alertService: alertService,
	}
}

func (h *AlertHandler) RegisterRoutes(r *gin.RouterGroup) {
	alerts := r.Group("/alerts", middleware.AuthMiddleware())
	{
		alerts.GET("", h.GetAlerts)
		alerts.POST("", h.CreateAlert)
		alerts.GET("/:alertId", h.GetAlert)
		alerts.PATCH("/:alertId", h.UpdateAlert)
		alerts.DELETE("/:alertId", h.DeleteAlert)
		alerts.GET("/:alertId/matches", h.PreviewMatches)
	}
}

func (h *AlertHandler) GetAlerts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	alerts, err := h.alertService.GetAlerts(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) GetAlert(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.alertService.GetAlert(userID, c.Param("alertId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlertHandler) CreateAlert(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAlertRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.alertService.CreateAlert(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AlertHandler) UpdateAlert(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAlertRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.alertService.UpdateAlert(userID, c.Param("alertId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.alertService.DeleteAlert(userID, c.Param("alertId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alert deleted"})
}

func (h *AlertHandler) PreviewMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.alertService.PreviewMatches(c.Request.Context(), userID, c.Param("alertId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
