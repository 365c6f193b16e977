package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID           string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type             NotificationType `gorm:"type:varchar(32);not null" json:"type"`
	RelatedUserID    *string          `gorm:"type:uuid" json:"related_user_id,omitempty"`
	RelatedRequestID *string          `gorm:"type:uuid" json:"related_request_id,omitempty"`
	RelatedOfferID   *string          `gorm:"type:uuid" json:"related_offer_id,omitempty"`
	// Data carries the denormalized payload pushed over the realtime
	// channel, e.g. {"request_content": "..."}.
	Data   datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	Read   bool           `gorm:"not null;default:false" json:"read"`
	ReadAt *time.Time     `json:"read_at,omitempty"`
}
