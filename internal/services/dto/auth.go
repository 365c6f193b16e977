package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type ConfirmDeletionRequest struct {
	Token string `json:"token" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID                string          `json:"id"`
	Username          string          `json:"username"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	IsEmailVerified   bool            `json:"is_email_verified"`
	IsAdmin           bool            `json:"is_admin"`
	PreferredCurrency models.Currency `json:"preferred_currency"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Name:              u.Name,
		Email:             u.Email,
		IsEmailVerified:   u.IsEmailVerified,
		IsAdmin:           u.IsAdmin,
		PreferredCurrency: u.PreferredCurrency,
		CreatedAt:         u.CreatedAt,
	}
}

// PublicUserResponse hides the email for profiles viewed by other users.
type PublicUserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPublicUserResponse(u *models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
