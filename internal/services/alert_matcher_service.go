package services

import (
	"context"

	"wantly_backend/internal/algorithms"
	"wantly_backend/internal/currency"
	"wantly_backend/internal/geo"
	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
)

// AlertMatcherService runs the matching pass for newly created requests
// and delivers a NEW_ALERT_MATCH notification per matching alert.
type AlertMatcherService interface {
	ProcessNewRequest(request *models.Request)
}

type alertMatcherService struct {
	alertRepo           repositories.AlertRepository
	rates               currency.RateSource
	notificationService NotificationService
	notifier            RealtimeNotifier
}

func NewAlertMatcherService(
	alertRepo repositories.AlertRepository,
	rates currency.RateSource,
	notificationService NotificationService,
	notifier RealtimeNotifier,
) AlertMatcherService {
	return &alertMatcherService{
		alertRepo:           alertRepo,
		rates:               rates,
		notificationService: notificationService,
		notifier:            notifier,
	}
}

// ProcessNewRequest evaluates every candidate alert against the request.
// One rate snapshot is taken for the whole pass so all comparisons see the
// same rates. Infrastructure failures abort the pass; a failure on a single
// alert excludes only that alert.
func (s *alertMatcherService) ProcessNewRequest(request *models.Request) {
	snapshot, err := s.rates.Snapshot(context.Background())
	if err != nil {
		logger.WithError(err).Error("Alert matching aborted, no rate snapshot", "request_id", request.ID)
		return
	}

	point, radius := candidateFilter(request)
	candidates, err := s.alertRepo.FindCandidates(request.Content, point, radius)
	if err != nil {
		logger.WithError(err).Error("Alert matching aborted, candidate query failed", "request_id", request.ID)
		return
	}
	if len(candidates) == 0 {
		return
	}

	outcomes := algorithms.MatchAlerts(request, candidates, snapshot)

	matched := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			logger.WithError(outcome.Err).Warn("Alert excluded from matching pass",
				"request_id", request.ID,
				"alert_id", outcome.Alert.ID,
			)
			continue
		}
		if !outcome.Matched {
			continue
		}
		matched++
		s.deliver(request, outcome.Alert)
	}

	logger.Info("Alert matching pass finished",
		"request_id", request.ID,
		"candidates", len(candidates),
		"matched", matched,
	)
}

func (s *alertMatcherService) deliver(request *models.Request, alert *models.Alert) {
	_, err := s.notificationService.Notify(NotificationInput{
		UserID:           alert.UserID,
		Type:             models.NotificationNewAlertMatch,
		RelatedRequestID: &request.ID,
		Data: map[string]interface{}{
			"alert_id":        alert.ID,
			"alert_content":   alert.Content,
			"request_content": request.Content,
		},
	})
	if err != nil {
		logger.WithError(err).Error("Failed to store alert match notification",
			"alert_id", alert.ID,
			"request_id", request.ID,
		)
		return
	}

	s.notifier.SendToUser(alert.UserID, EventAlertMatch, map[string]interface{}{
		"alert_id":   alert.ID,
		"request_id": request.ID,
	})
}

func candidateFilter(request *models.Request) (point *geo.Point, radius *int) {
	if loc, ok := request.Location(); ok {
		return &loc, request.Radius
	}
	return nil, nil
}
