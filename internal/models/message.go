package models

type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender_id"`
	Sender     *User  `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Receiver   *User  `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
	Content    string `gorm:"not null" json:"content"`
	Edited     bool   `gorm:"not null;default:false" json:"edited"`
}
