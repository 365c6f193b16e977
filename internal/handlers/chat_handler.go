package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat", middleware.AuthMiddleware())
	{
		chat.POST("/messages", h.SendMessage)
		chat.GET("/contacts", h.GetContacts)
		chat.GET("/conversations/:userId", h.GetConversation)
		chat.PATCH("/messages/:messageId", h.UpdateMessage)
		chat.DELETE("/messages/:messageId", h.DeleteMessage)
	}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.chatService.SendMessage(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ChatHandler) GetContacts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.chatService.GetContacts(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ConversationQuery
	query.Page, query.PageSize = ParsePagination(c)

	messages, err := h.chatService.GetConversation(userID, c.Param("userId"), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) UpdateMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.chatService.UpdateMessage(userID, c.Param("messageId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.chatService.DeleteMessage(userID, c.Param("messageId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
