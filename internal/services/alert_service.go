package services

import (
	"context"
	"errors"

	"wantly_backend/internal/algorithms"
	"wantly_backend/internal/currency"
	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const alertDomain = "alert"

// previewWindow bounds how many recent requests an on-demand preview
// evaluates.
const previewWindow = 200

type AlertService interface {
	GetAlerts(userID string) ([]dto.AlertResponse, error)
	GetAlert(userID, alertID string) (*dto.AlertResponse, error)
	CreateAlert(userID string, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	UpdateAlert(userID, alertID string, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error)
	DeleteAlert(userID, alertID string) error
	// PreviewMatches evaluates the alert against recent stored requests
	// with the same matcher used for live dispatch.
	PreviewMatches(ctx context.Context, userID, alertID string) (*dto.AlertPreviewResponse, error)
}

type alertService struct {
	alertRepo   repositories.AlertRepository
	requestRepo repositories.RequestRepository
	rates       currency.RateSource
}

func NewAlertService(
	alertRepo repositories.AlertRepository,
	requestRepo repositories.RequestRepository,
	rates currency.RateSource,
) AlertService {
	return &alertService{
		alertRepo:   alertRepo,
		requestRepo: requestRepo,
		rates:       rates,
	}
}

func (s *alertService) GetAlerts(userID string) ([]dto.AlertResponse, error) {
	alerts, err := s.alertRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, alertDomain)
	}

	resp := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		resp = append(resp, dto.NewAlertResponse(&alerts[i]))
	}
	return resp, nil
}

func (s *alertService) GetAlert(userID, alertID string) (*dto.AlertResponse, error) {
	alert, err := s.findOwned(userID, alertID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAlertResponse(alert)
	return &resp, nil
}

func (s *alertService) CreateAlert(userID string, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	alert := &models.Alert{
		UserID:               userID,
		Content:              req.Content,
		Budget:               req.Budget,
		BudgetComparisonMode: models.ComparisonMode(req.BudgetComparisonMode),
		Currency:             models.Currency(req.Currency),
		Longitude:            req.Longitude,
		Latitude:             req.Latitude,
		Radius:               req.Radius,
	}

	if err := s.alertRepo.Create(alert); err != nil {
		return nil, apperrors.ErrDatabase(err, alertDomain)
	}

	resp := dto.NewAlertResponse(alert)
	return &resp, nil
}

func (s *alertService) UpdateAlert(userID, alertID string, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	alert, err := s.findOwned(userID, alertID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		alert.Content = *req.Content
	}
	if req.Budget != nil {
		alert.Budget = *req.Budget
	}
	if req.BudgetComparisonMode != nil {
		alert.BudgetComparisonMode = models.ComparisonMode(*req.BudgetComparisonMode)
	}
	if req.Currency != nil {
		alert.Currency = models.Currency(*req.Currency)
	}
	if req.ClearLocation {
		alert.Longitude = nil
		alert.Latitude = nil
		alert.Radius = nil
	} else if req.Longitude != nil {
		alert.Longitude = req.Longitude
		alert.Latitude = req.Latitude
		alert.Radius = req.Radius
	}

	if err := s.alertRepo.Update(alert); err != nil {
		return nil, apperrors.ErrDatabase(err, alertDomain)
	}

	resp := dto.NewAlertResponse(alert)
	return &resp, nil
}

func (s *alertService) DeleteAlert(userID, alertID string) error {
	if _, err := s.findOwned(userID, alertID); err != nil {
		return err
	}
	if err := s.alertRepo.Delete(alertID); err != nil {
		return apperrors.ErrDatabase(err, alertDomain)
	}
	return nil
}

func (s *alertService) PreviewMatches(ctx context.Context, userID, alertID string) (*dto.AlertPreviewResponse, error) {
	alert, err := s.findOwned(userID, alertID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.rates.Snapshot(ctx)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, alertDomain, "rate snapshot unavailable")
	}

	requests, err := s.requestRepo.FindRecent(previewWindow)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, alertDomain)
	}

	resp := &dto.AlertPreviewResponse{
		Alert:   dto.NewAlertResponse(alert),
		Matches: []dto.RequestResponse{},
	}
	for i := range requests {
		matched, err := algorithms.EvaluateAlert(&requests[i], alert, snapshot)
		if err != nil {
			logger.WithError(err).Warn("Request skipped in alert preview",
				"alert_id", alert.ID,
				"request_id", requests[i].ID,
			)
			continue
		}
		if matched {
			resp.Matches = append(resp.Matches, dto.NewRequestResponse(&requests[i], nil))
		}
	}
	return resp, nil
}

func (s *alertService) findOwned(userID, alertID string) (*models.Alert, error) {
	alert, err := s.alertRepo.FindByID(alertID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return nil, apperrors.ErrNotFound(err, alertDomain, "alert not found")
		}
		return nil, apperrors.ErrDatabase(err, alertDomain)
	}
	if alert.UserID != userID {
		return nil, apperrors.NewForbiddenError("not the owner of this alert")
	}
	return alert, nil
}
