package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type CreateOfferRequest struct {
	Content     string `json:"content" validate:"required,min=3,max=2000"`
	Price       int    `json:"price" validate:"required,gt=0"`
	Negotiation bool   `json:"negotiation"`
}

type UpdateOfferRequest struct {
	Content     *string `json:"content,omitempty" validate:"omitempty,min=3,max=2000"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,gt=0"`
	Negotiation *bool   `json:"negotiation,omitempty"`
}

type OfferImageResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type OfferResponse struct {
	ID          string               `json:"id"`
	RequestID   string               `json:"request_id"`
	User        *PublicUserResponse  `json:"user,omitempty"`
	Content     string               `json:"content"`
	Price       int                  `json:"price"`
	Negotiation bool                 `json:"negotiation"`
	Images      []OfferImageResponse `json:"images,omitempty"`
	Comments    []CommentResponse    `json:"comments,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewOfferResponse maps an offer; imageURL resolves stored image names to
// public URLs and may be nil when images are not expanded.
func NewOfferResponse(o *models.Offer, imageURL func(name string) string) OfferResponse {
	resp := OfferResponse{
		ID:          o.ID,
		RequestID:   o.RequestID,
		Content:     o.Content,
		Price:       o.Price,
		Negotiation: o.Negotiation,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.User != nil {
		user := NewPublicUserResponse(o.User)
		resp.User = &user
	}
	for _, img := range o.Images {
		item := OfferImageResponse{ID: img.ID, Name: img.Name}
		if imageURL != nil {
			item.URL = imageURL(img.Name)
		}
		resp.Images = append(resp.Images, item)
	}
	for i := range o.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(&o.Comments[i]))
	}
	return resp
}
