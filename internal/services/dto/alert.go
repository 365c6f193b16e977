package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type CreateAlertRequest struct {
	Content              string   `json:"content" validate:"required,min=3,max=500"`
	Budget               int      `json:"budget" validate:"required,gt=0"`
	BudgetComparisonMode string   `json:"budget_comparison_mode" validate:"required,comparison_mode"`
	Currency             string   `json:"currency" validate:"required,currency_code"`
	Longitude            *float64 `json:"longitude,omitempty" validate:"required_with=Latitude Radius,omitempty,gte=-180,lte=180"`
	Latitude             *float64 `json:"latitude,omitempty" validate:"required_with=Longitude Radius,omitempty,gte=-90,lte=90"`
	Radius               *int     `json:"radius,omitempty" validate:"required_with=Longitude Latitude,omitempty,gt=0"`
}

// Edits follow the same trio pairing as create. Sending the trio moves the
// geofence; clear_location removes it and cannot be combined with the trio.
type UpdateAlertRequest struct {
	Content              *string  `json:"content,omitempty" validate:"omitempty,min=3,max=500"`
	Budget               *int     `json:"budget,omitempty" validate:"omitempty,gt=0"`
	BudgetComparisonMode *string  `json:"budget_comparison_mode,omitempty" validate:"omitempty,comparison_mode"`
	Currency             *string  `json:"currency,omitempty" validate:"omitempty,currency_code"`
	Longitude            *float64 `json:"longitude,omitempty" validate:"required_with=Latitude Radius,omitempty,gte=-180,lte=180"`
	Latitude             *float64 `json:"latitude,omitempty" validate:"required_with=Longitude Radius,omitempty,gte=-90,lte=90"`
	Radius               *int     `json:"radius,omitempty" validate:"required_with=Longitude Latitude,omitempty,gt=0"`
	ClearLocation        bool     `json:"clear_location,omitempty" validate:"excluded_with=Longitude Latitude Radius"`
}

type AlertResponse struct {
	ID                   string                `json:"id"`
	Content              string                `json:"content"`
	Budget               int                   `json:"budget"`
	BudgetComparisonMode models.ComparisonMode `json:"budget_comparison_mode"`
	Currency             models.Currency       `json:"currency"`
	Longitude            *float64              `json:"longitude,omitempty"`
	Latitude             *float64              `json:"latitude,omitempty"`
	Radius               *int                  `json:"radius,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

func NewAlertResponse(a *models.Alert) AlertResponse {
	return AlertResponse{
		ID:                   a.ID,
		Content:              a.Content,
		Budget:               a.Budget,
		BudgetComparisonMode: a.BudgetComparisonMode,
		Currency:             a.Currency,
		Longitude:            a.Longitude,
		Latitude:             a.Latitude,
		Radius:               a.Radius,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// AlertPreviewResponse lists the stored requests an alert currently
// matches, evaluated on demand with a fresh rate snapshot.
type AlertPreviewResponse struct {
	Alert   AlertResponse     `json:"alert"`
	Matches []RequestResponse `json:"matches"`
}
