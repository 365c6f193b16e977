package models

import "time"

type User struct {
	BaseModel
	Username          string     `gorm:"uniqueIndex;not null" json:"username"`
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `json:"-"`
	IsEmailVerified   bool       `gorm:"not null;default:false" json:"is_email_verified"`
	VerificationToken *string    `gorm:"uniqueIndex" json:"-"`
	ResetToken        *string    `gorm:"uniqueIndex" json:"-"`
	DeletionToken     *string    `gorm:"uniqueIndex" json:"-"`
	DeletionExpiresAt *time.Time `json:"-"`
	IsAdmin           bool       `gorm:"not null;default:false" json:"is_admin"`
	IsBlocked         bool       `gorm:"not null;default:false" json:"is_blocked"`
	PreferredCurrency Currency   `gorm:"type:varchar(3);not null;default:USD" json:"preferred_currency"`
}
