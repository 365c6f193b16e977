package handlers

import (
	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Request      *RequestHandler
	Offer        *OfferHandler
	Comment      *CommentHandler
	Review       *ReviewHandler
	Chat         *ChatHandler
	Alert        *AlertHandler
	Notification *NotificationHandler
	Currency     *CurrencyHandler
	Admin        *AdminHandler
	Health       *HealthHandler
}

func NewAppHandlers(
	container *services.ServiceContainer,
	v *validator.Validator,
	limiter *middleware.RateLimiter,
) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.AuthService, limiter),
		User:         NewUserHandler(base, container.UserService),
		Request:      NewRequestHandler(base, container.RequestService),
		Offer:        NewOfferHandler(base, container.OfferService),
		Comment:      NewCommentHandler(base, container.CommentService),
		Review:       NewReviewHandler(base, container.ReviewService),
		Chat:         NewChatHandler(base, container.ChatService),
		Alert:        NewAlertHandler(base, container.AlertService),
		Notification: NewNotificationHandler(base, container.NotificationService),
		Currency:     NewCurrencyHandler(base, container.CurrencyService),
		Admin:        NewAdminHandler(base, container.AdminService),
		Health:       NewHealthHandler(base),
	}
}
