package dto

import (
	"encoding/json"
	"time"

	"wantly_backend/internal/models"
)

type NotificationsQuery struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type NotificationResponse struct {
	ID               string                  `json:"id"`
	Type             models.NotificationType `json:"type"`
	RelatedUserID    *string                 `json:"related_user_id,omitempty"`
	RelatedRequestID *string                 `json:"related_request_id,omitempty"`
	RelatedOfferID   *string                 `json:"related_offer_id,omitempty"`
	Data             json.RawMessage         `json:"data,omitempty"`
	Read             bool                    `json:"read"`
	ReadAt           *time.Time              `json:"read_at,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		Type:             n.Type,
		RelatedUserID:    n.RelatedUserID,
		RelatedRequestID: n.RelatedRequestID,
		RelatedOfferID:   n.RelatedOfferID,
		Data:             json.RawMessage(n.Data),
		Read:             n.Read,
		ReadAt:           n.ReadAt,
		CreatedAt:        n.CreatedAt,
	}
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
