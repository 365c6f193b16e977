package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type CommentResponse struct {
	ID        string              `json:"id"`
	OfferID   string              `json:"offer_id"`
	User      *PublicUserResponse `json:"user,omitempty"`
	Content   string              `json:"content"`
	Edited    bool                `json:"edited"`
	CreatedAt time.Time           `json:"created_at"`
}

func NewCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		OfferID:   c.OfferID,
		Content:   c.Content,
		Edited:    c.Edited,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		user := NewPublicUserResponse(c.User)
		resp.User = &user
	}
	return resp
}
