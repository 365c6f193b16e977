package models

type Comment struct {
	BaseModel
	OfferID string `gorm:"type:uuid;not null;index" json:"offer_id"`
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Content string `gorm:"not null" json:"content"`
	Edited  bool   `gorm:"not null;default:false" json:"edited"`
}
