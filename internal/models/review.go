package models

// Review is one user's rating of another. The composite unique index keeps
// it to one review per (reviewer, reviewed) pair.
type Review struct {
	BaseModel
	ReviewerUserID string  `gorm:"type:uuid;not null;uniqueIndex:idx_reviewer_reviewed" json:"reviewer_user_id"`
	Reviewer       *User   `gorm:"foreignKey:ReviewerUserID;constraint:OnDelete:CASCADE" json:"reviewer,omitempty"`
	ReviewedUserID string  `gorm:"type:uuid;not null;uniqueIndex:idx_reviewer_reviewed" json:"reviewed_user_id"`
	Content        *string `json:"content,omitempty"`
	Rating         int     `gorm:"not null" json:"rating"`
	Edited         bool    `gorm:"not null;default:false" json:"edited"`
}
