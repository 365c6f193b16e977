package dto

import (
	"time"

	"wantly_backend/internal/models"
)

// Geofence fields come as a trio: required_with keeps them all present or
// all absent.
type CreateRequestRequest struct {
	Content   string   `json:"content" validate:"required,min=3,max=2000"`
	Budget    int      `json:"budget" validate:"required,gt=0"`
	Currency  string   `json:"currency" validate:"required,currency_code"`
	Longitude *float64 `json:"longitude,omitempty" validate:"required_with=Latitude Radius,omitempty,gte=-180,lte=180"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"required_with=Longitude Radius,omitempty,gte=-90,lte=90"`
	Radius    *int     `json:"radius,omitempty" validate:"required_with=Longitude Latitude,omitempty,gt=0"`
}

// Edits follow the same trio pairing as create. Sending the trio moves the
// geofence; clear_location removes it and cannot be combined with the trio.
type UpdateRequestRequest struct {
	Content       *string  `json:"content,omitempty" validate:"omitempty,min=3,max=2000"`
	Budget        *int     `json:"budget,omitempty" validate:"omitempty,gt=0"`
	Currency      *string  `json:"currency,omitempty" validate:"omitempty,currency_code"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"required_with=Latitude Radius,omitempty,gte=-180,lte=180"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"required_with=Longitude Radius,omitempty,gte=-90,lte=90"`
	Radius        *int     `json:"radius,omitempty" validate:"required_with=Longitude Latitude,omitempty,gt=0"`
	ClearLocation bool     `json:"clear_location,omitempty" validate:"excluded_with=Longitude Latitude Radius"`
}

type SearchRequestsQuery struct {
	Content  string `form:"content"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type RequestResponse struct {
	ID        string              `json:"id"`
	User      *PublicUserResponse `json:"user,omitempty"`
	Content   string              `json:"content"`
	Budget    int                 `json:"budget"`
	Currency  models.Currency     `json:"currency"`
	Longitude *float64            `json:"longitude,omitempty"`
	Latitude  *float64            `json:"latitude,omitempty"`
	Radius    *int                `json:"radius,omitempty"`
	Offers    []OfferResponse     `json:"offers,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewRequestResponse(r *models.Request, imageURL func(name string) string) RequestResponse {
	resp := RequestResponse{
		ID:        r.ID,
		Content:   r.Content,
		Budget:    r.Budget,
		Currency:  r.Currency,
		Longitude: r.Longitude,
		Latitude:  r.Latitude,
		Radius:    r.Radius,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		user := NewPublicUserResponse(r.User)
		resp.User = &user
	}
	for i := range r.Offers {
		resp.Offers = append(resp.Offers, NewOfferResponse(&r.Offers[i], imageURL))
	}
	return resp
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
