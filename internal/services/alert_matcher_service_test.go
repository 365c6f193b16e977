package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wantly_backend/internal/currency"
	"wantly_backend/internal/geo"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
)

type stubAlertRepo struct {
	candidates []models.Alert
	err        error
}

func (s *stubAlertRepo) FindByID(string) (*models.Alert, error)      { return nil, repositories.ErrAlertNotFound }
func (s *stubAlertRepo) FindByUser(string) ([]models.Alert, error)   { return nil, nil }
func (s *stubAlertRepo) Create(*models.Alert) error                  { return nil }
func (s *stubAlertRepo) Update(*models.Alert) error                  { return nil }
func (s *stubAlertRepo) Delete(string) error                         { return nil }
func (s *stubAlertRepo) CountAll() (int64, error)                    { return 0, nil }
func (s *stubAlertRepo) FindCandidates(string, *geo.Point, *int) ([]models.Alert, error) {
	return s.candidates, s.err
}

type stubRates struct {
	snapshot *currency.Snapshot
	err      error
}

func (s *stubRates) Snapshot(context.Context) (*currency.Snapshot, error) {
	return s.snapshot, s.err
}

type recordingNotifications struct {
	inputs []NotificationInput
	err    error
}

func (r *recordingNotifications) Notify(input NotificationInput) (*models.Notification, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.inputs = append(r.inputs, input)
	return &models.Notification{UserID: input.UserID, Type: input.Type}, nil
}

func (r *recordingNotifications) GetNotifications(string, *dto.NotificationsQuery) (*dto.NotificationListResponse, error) {
	return nil, nil
}
func (r *recordingNotifications) GetUnreadCount(string) (*dto.UnreadCountResponse, error) {
	return nil, nil
}
func (r *recordingNotifications) MarkAsRead(string, string) error { return nil }
func (r *recordingNotifications) MarkAllAsRead(string) error      { return nil }
func (r *recordingNotifications) Delete(string, string) error     { return nil }

type recordingNotifier struct {
	events []struct {
		UserID string
		Event  string
	}
}

func (r *recordingNotifier) SendToUser(userID, event string, _ interface{}) {
	r.events = append(r.events, struct {
		UserID string
		Event  string
	}{userID, event})
}

func matcherFixture(alerts []models.Alert) (*alertMatcherService, *recordingNotifications, *recordingNotifier) {
	snapshot := currency.NewSnapshot([]currency.Rate{
		{Currency: "USD", Rate: 1.08},
	}, time.Now())

	notifications := &recordingNotifications{}
	notifier := &recordingNotifier{}
	svc := NewAlertMatcherService(
		&stubAlertRepo{candidates: alerts},
		&stubRates{snapshot: snapshot},
		notifications,
		notifier,
	).(*alertMatcherService)
	return svc, notifications, notifier
}

func matcherRequest() *models.Request {
	return &models.Request{
		BaseModel: models.BaseModel{ID: "req-1"},
		UserID:    "author",
		Content:   "I want a bike urgently",
		Budget:    500,
		Currency:  models.CurrencyUSD,
	}
}

func matcherAlert(id, userID string, code models.Currency) models.Alert {
	return models.Alert{
		BaseModel:            models.BaseModel{ID: id},
		UserID:               userID,
		Content:              "bike",
		Budget:               100,
		Currency:             code,
		BudgetComparisonMode: models.ComparisonGreaterThan,
	}
}

func TestProcessNewRequest_NotifiesEachMatch(t *testing.T) {
	alerts := []models.Alert{
		matcherAlert("alert-1", "owner-1", models.CurrencyEUR),
		matcherAlert("alert-2", "owner-2", models.CurrencyEUR),
	}
	svc, notifications, notifier := matcherFixture(alerts)

	svc.ProcessNewRequest(matcherRequest())

	require.Len(t, notifications.inputs, 2)
	assert.Equal(t, "owner-1", notifications.inputs[0].UserID)
	assert.Equal(t, models.NotificationNewAlertMatch, notifications.inputs[0].Type)
	require.NotNil(t, notifications.inputs[0].RelatedRequestID)
	assert.Equal(t, "req-1", *notifications.inputs[0].RelatedRequestID)
	assert.Equal(t, "alert-1", notifications.inputs[0].Data["alert_id"])

	require.Len(t, notifier.events, 2)
	assert.Equal(t, EventAlertMatch, notifier.events[0].Event)
	assert.Equal(t, "owner-1", notifier.events[0].UserID)
}

func TestProcessNewRequest_BrokenAlertDoesNotStopBatch(t *testing.T) {
	alerts := []models.Alert{
		matcherAlert("alert-1", "owner-1", models.CurrencyEUR),
		matcherAlert("alert-2", "owner-2", models.CurrencyCHF), // no CHF rate in the snapshot
		matcherAlert("alert-3", "owner-3", models.CurrencyEUR),
	}
	svc, notifications, _ := matcherFixture(alerts)

	svc.ProcessNewRequest(matcherRequest())

	require.Len(t, notifications.inputs, 2)
	assert.Equal(t, "owner-1", notifications.inputs[0].UserID)
	assert.Equal(t, "owner-3", notifications.inputs[1].UserID)
}

func TestProcessNewRequest_AbortsWithoutSnapshot(t *testing.T) {
	notifications := &recordingNotifications{}
	notifier := &recordingNotifier{}
	svc := NewAlertMatcherService(
		&stubAlertRepo{candidates: []models.Alert{matcherAlert("alert-1", "owner-1", models.CurrencyEUR)}},
		&stubRates{err: errors.New("redis down")},
		notifications,
		notifier,
	)

	svc.ProcessNewRequest(matcherRequest())

	assert.Empty(t, notifications.inputs)
	assert.Empty(t, notifier.events)
}

func TestProcessNewRequest_AbortsOnCandidateQueryError(t *testing.T) {
	snapshot := currency.NewSnapshot([]currency.Rate{{Currency: "USD", Rate: 1.08}}, time.Now())
	notifications := &recordingNotifications{}
	svc := NewAlertMatcherService(
		&stubAlertRepo{err: errors.New("connection refused")},
		&stubRates{snapshot: snapshot},
		notifications,
		&recordingNotifier{},
	)

	svc.ProcessNewRequest(matcherRequest())

	assert.Empty(t, notifications.inputs)
}

func TestProcessNewRequest_GeolocatedRequestFiltersByLocation(t *testing.T) {
	// A geofenced alert 1.4km away with a 1km radius still matches a
	// request carrying a 500m radius: 1.4km <= 1km + 500m fails, so move
	// the alert closer. Two alerts, one inside and one far away.
	lonClose, latClose := 13.405, 52.52
	lonFar, latFar := 2.3522, 48.8566 // Paris, nowhere near Berlin

	near := matcherAlert("alert-near", "owner-near", models.CurrencyEUR)
	near.Longitude, near.Latitude = &lonClose, &latClose
	radius := 1000
	near.Radius = &radius

	far := matcherAlert("alert-far", "owner-far", models.CurrencyEUR)
	far.Longitude, far.Latitude = &lonFar, &latFar
	far.Radius = &radius

	svc, notifications, _ := matcherFixture([]models.Alert{near, far})

	request := matcherRequest()
	reqLon, reqLat, reqRadius := 13.41, 52.523, 500
	request.Longitude, request.Latitude = &reqLon, &reqLat
	request.Radius = &reqRadius

	svc.ProcessNewRequest(request)

	require.Len(t, notifications.inputs, 1)
	assert.Equal(t, "owner-near", notifications.inputs[0].UserID)
}
