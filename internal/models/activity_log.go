package models

// ActivityLog is an admin-visible audit record written on auth events and
// request/offer mutations.
type ActivityLog struct {
	BaseModel
	Type    LogType `gorm:"type:varchar(32);not null;index" json:"type"`
	UserID  *string `gorm:"type:uuid;index" json:"user_id,omitempty"`
	IP      *string `json:"ip,omitempty"`
	Content *string `json:"content,omitempty"`
}
