package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const notificationDomain = "notification"

// NotificationInput describes a notification another service wants to
// deliver. Data is marshalled into the row's jsonb payload.
type NotificationInput struct {
	UserID           string
	Type             models.NotificationType
	RelatedUserID    *string
	RelatedRequestID *string
	RelatedOfferID   *string
	Data             map[string]interface{}
}

type NotificationService interface {
	// Notify persists the notification and pushes it over the realtime
	// channel.
	Notify(input NotificationInput) (*models.Notification, error)
	GetNotifications(userID string, query *dto.NotificationsQuery) (*dto.NotificationListResponse, error)
	GetUnreadCount(userID string) (*dto.UnreadCountResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	Delete(userID, notificationID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	notifier         RealtimeNotifier
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	notifier RealtimeNotifier,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

func (s *notificationService) Notify(input NotificationInput) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:           input.UserID,
		Type:             input.Type,
		RelatedUserID:    input.RelatedUserID,
		RelatedRequestID: input.RelatedRequestID,
		RelatedOfferID:   input.RelatedOfferID,
	}
	if input.Data != nil {
		raw, err := json.Marshal(input.Data)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		notification.Data = datatypes.JSON(raw)
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.ErrDatabase(err, notificationDomain)
	}

	resp := dto.NewNotificationResponse(notification)
	s.notifier.SendToUser(input.UserID, EventNewNotification, resp)

	logger.Info("Notification created",
		"user_id", input.UserID,
		"type", string(input.Type),
	)
	return notification, nil
}

func (s *notificationService) GetNotifications(userID string, query *dto.NotificationsQuery) (*dto.NotificationListResponse, error) {
	criteria := repositories.NotificationCriteria{
		UnreadOnly: query.UnreadOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if query.Type != "" {
		criteria.Type = query.Type
	}

	notifications, total, err := s.notificationRepo.FindByUser(userID, criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, notificationDomain)
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		Total:         total,
		Page:          criteria.Page,
		PageSize:      criteria.PageSize,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, dto.NewNotificationResponse(&notifications[i]))
	}
	return resp, nil
}

func (s *notificationService) GetUnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, notificationDomain)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, notificationDomain, "notification not found")
		}
		return apperrors.ErrDatabase(err, notificationDomain)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.ErrDatabase(err, notificationDomain)
	}
	return nil
}

func (s *notificationService) Delete(userID, notificationID string) error {
	if err := s.notificationRepo.Delete(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, notificationDomain, "notification not found")
		}
		return apperrors.ErrDatabase(err, notificationDomain)
	}
	return nil
}
