package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type ConversationQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Edited     bool      `json:"edited"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Edited:     m.Edited,
		CreatedAt:  m.CreatedAt,
	}
}

type ContactsResponse struct {
	Contacts []PublicUserResponse `json:"contacts"`
}
