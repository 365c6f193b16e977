package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type CreateReviewRequest struct {
	ReviewedUserID string  `json:"reviewed_user_id" validate:"required,uuid"`
	Rating         int     `json:"rating" validate:"required,min=1,max=5"`
	Content        *string `json:"content,omitempty" validate:"omitempty,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID             string              `json:"id"`
	Reviewer       *PublicUserResponse `json:"reviewer,omitempty"`
	ReviewedUserID string              `json:"reviewed_user_id"`
	Rating         int                 `json:"rating"`
	Content        *string             `json:"content,omitempty"`
	Edited         bool                `json:"edited"`
	CreatedAt      time.Time           `json:"created_at"`
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:             r.ID,
		ReviewedUserID: r.ReviewedUserID,
		Rating:         r.Rating,
		Content:        r.Content,
		Edited:         r.Edited,
		CreatedAt:      r.CreatedAt,
	}
	if r.Reviewer != nil {
		reviewer := NewPublicUserResponse(r.Reviewer)
		resp.Reviewer = &reviewer
	}
	return resp
}
