package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.GET("", h.Search)
		requests.GET("/:requestId", h.GetRequest)
	}

	protected := r.Group("/requests", middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateRequest)
		protected.PATCH("/:requestId", h.UpdateRequest)
		protected.DELETE("/:requestId", h.DeleteRequest)
	}
}

func (h *RequestHandler) Search(c *gin.Context) {
	var query dto.SearchRequestsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(c)

	resp, err := h.requestService.Search(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	resp, err := h.requestService.GetRequest(c.Param("requestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.requestService.CreateRequest(userID, &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.requestService.UpdateRequest(userID, c.Param("requestId"), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.requestService.DeleteRequest(userID, c.Param("requestId"), c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request deleted"})
}
