package models

type Offer struct {
	BaseModel
	RequestID   string   `gorm:"type:uuid;not null;index" json:"request_id"`
	Request     *Request `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"request,omitempty"`
	UserID      string   `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Content     string   `gorm:"not null" json:"content"`
	Price       int      `gorm:"not null" json:"price"`
	Negotiation bool     `gorm:"not null;default:false" json:"negotiation"`

	Images   []OfferImage `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Comments []Comment    `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// AcceptedOffer marks the single offer a request owner accepted. Both
// columns are unique so a request can accept at most one offer and an offer
// can be accepted at most once.
type AcceptedOffer struct {
	BaseModel
	RequestID string `gorm:"type:uuid;not null;uniqueIndex" json:"request_id"`
	OfferID   string `gorm:"type:uuid;not null;uniqueIndex" json:"offer_id"`
}

type OfferImage struct {
	BaseModel
	OfferID string `gorm:"type:uuid;not null;index" json:"offer_id"`
	Name    string `gorm:"not null" json:"name"`
}
