package services

import (
	"gorm.io/gorm"

	"wantly_backend/internal/config"
	"wantly_backend/internal/currency"
	"wantly_backend/internal/email"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	RequestService      RequestService
	OfferService        OfferService
	CommentService      CommentService
	ReviewService       ReviewService
	ChatService         ChatService
	AlertService        AlertService
	AlertMatcherService AlertMatcherService
	NotificationService NotificationService
	CurrencyService     CurrencyService
	AdminService        AdminService
}

// NewServiceContainer wires repositories, the rate source, storage, email
// and the realtime notifier into the service graph.
func NewServiceContainer(
	db *gorm.DB,
	cfg *config.Config,
	rates currency.RateSource,
	store storage.Storage,
	emailSender email.Sender,
	notifier RealtimeNotifier,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	alertRepo := repositories.NewAlertRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	logRepo := repositories.NewLogRepository(db)

	notificationService := NewNotificationService(notificationRepo, notifier)
	matcherService := NewAlertMatcherService(alertRepo, rates, notificationService, notifier)
	offerService := NewOfferService(offerRepo, requestRepo, logRepo, notificationService, store)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, logRepo, emailSender, cfg.Server.FrontendURL),
		UserService:         NewUserService(userRepo, reviewRepo),
		RequestService:      NewRequestService(requestRepo, logRepo, matcherService, offerService.ImageURL),
		OfferService:        offerService,
		CommentService:      NewCommentService(commentRepo, offerRepo, notificationService),
		ReviewService:       NewReviewService(reviewRepo, userRepo),
		ChatService:         NewChatService(messageRepo, userRepo, notificationService, notifier),
		AlertService:        NewAlertService(alertRepo, requestRepo, rates),
		AlertMatcherService: matcherService,
		NotificationService: notificationService,
		CurrencyService:     NewCurrencyService(rates),
		AdminService:        NewAdminService(userRepo, requestRepo, offerRepo, alertRepo, messageRepo, notificationRepo, logRepo),
	}
}
