package services

import (
	"errors"

	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const adminDomain = "admin"

type AdminService interface {
	GetPlatformStats() (*dto.PlatformStatsResponse, error)
	GetActivityLogs(query *dto.ActivityLogsQuery) (*dto.ActivityLogListResponse, error)
	GetUsers(page, pageSize int) (*dto.UserListResponse, error)
	SetUserBlocked(adminID, userID string, blocked bool) error
}

type adminService struct {
	userRepo         repositories.UserRepository
	requestRepo      repositories.RequestRepository
	offerRepo        repositories.OfferRepository
	alertRepo        repositories.AlertRepository
	messageRepo      repositories.MessageRepository
	notificationRepo repositories.NotificationRepository
	logRepo          repositories.LogRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	requestRepo repositories.RequestRepository,
	offerRepo repositories.OfferRepository,
	alertRepo repositories.AlertRepository,
	messageRepo repositories.MessageRepository,
	notificationRepo repositories.NotificationRepository,
	logRepo repositories.LogRepository,
) AdminService {
	return &adminService{
		userRepo:         userRepo,
		requestRepo:      requestRepo,
		offerRepo:        offerRepo,
		alertRepo:        alertRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		logRepo:          logRepo,
	}
}

func (s *adminService) GetPlatformStats() (*dto.PlatformStatsResponse, error) {
	stats := &dto.PlatformStatsResponse{}

	counts := []struct {
		dst   *int64
		count func() (int64, error)
	}{
		{&stats.Users, s.userRepo.CountAll},
		{&stats.Requests, s.requestRepo.CountAll},
		{&stats.Offers, s.offerRepo.CountAll},
		{&stats.Alerts, s.alertRepo.CountAll},
		{&stats.Messages, s.messageRepo.CountAll},
		{&stats.Notifications, s.notificationRepo.CountAll},
	}
	for _, c := range counts {
		total, err := c.count()
		if err != nil {
			return nil, apperrors.ErrDatabase(err, adminDomain)
		}
		*c.dst = total
	}
	return stats, nil
}

func (s *adminService) GetActivityLogs(query *dto.ActivityLogsQuery) (*dto.ActivityLogListResponse, error) {
	criteria := repositories.LogCriteria{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Type != "" {
		t := models.LogType(query.Type)
		criteria.Type = &t
	}
	if query.UserID != "" {
		criteria.UserID = &query.UserID
	}

	logs, total, err := s.logRepo.Find(criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, adminDomain)
	}

	resp := &dto.ActivityLogListResponse{
		Logs:     make([]dto.ActivityLogResponse, 0, len(logs)),
		Total:    total,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	for i := range logs {
		resp.Logs = append(resp.Logs, dto.NewActivityLogResponse(&logs[i]))
	}
	return resp, nil
}

func (s *adminService) GetUsers(page, pageSize int) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, adminDomain)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *adminService) SetUserBlocked(adminID, userID string, blocked bool) error {
	if adminID == userID {
		return apperrors.ErrInvalidOperation(adminDomain, "cannot block yourself")
	}
	if err := s.userRepo.SetBlocked(userID, blocked); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, adminDomain, "user not found")
		}
		return apperrors.ErrDatabase(err, adminDomain)
	}
	return nil
}
