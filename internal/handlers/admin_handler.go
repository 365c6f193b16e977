package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/stats", h.GetPlatformStats)
		admin.GET("/logs", h.GetActivityLogs)
		admin.GET("/users", h.GetUsers)
		admin.PUT("/users/:userId/blocked", h.SetUserBlocked)
	}
}

func (h *AdminHandler) GetPlatformStats(c *gin.Context) {
	resp, err := h.adminService.GetPlatformStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetActivityLogs(c *gin.Context) {
	var query dto.ActivityLogsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(c)

	resp, err := h.adminService.GetActivityLogs(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.adminService.GetUsers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetUserBlocked(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetBlockedRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.SetUserBlocked(adminID, c.Param("userId"), req.Blocked); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}
