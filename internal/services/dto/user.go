package dto

type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Username          *string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	PreferredCurrency *string `json:"preferred_currency,omitempty" validate:"omitempty,currency_code"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UserProfileResponse struct {
	PublicUserResponse
	AverageRating float64          `json:"average_rating"`
	Reviews       []ReviewResponse `json:"reviews"`
}
