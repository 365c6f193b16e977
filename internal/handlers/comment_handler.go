package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

func (h *CommentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/offers/:offerId/comments", h.GetComments)

	protected := r.Group("", middleware.AuthMiddleware())
	{
		protected.POST("/offers/:offerId/comments", h.CreateComment)
		protected.PATCH("/comments/:commentId", h.UpdateComment)
		protected.DELETE("/comments/:commentId", h.DeleteComment)
	}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetComments(c.Param("offerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.commentService.CreateComment(userID, c.Param("offerId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.commentService.UpdateComment(userID, c.Param("commentId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(userID, c.Param("commentId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
