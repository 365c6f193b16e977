package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
)

type stubRequestStore struct {
	request *models.Request
	updated *models.Request
}

func (s *stubRequestStore) FindByID(id string) (*models.Request, error) {
	if s.request == nil || s.request.ID != id {
		return nil, repositories.ErrRequestNotFound
	}
	return s.request, nil
}
func (s *stubRequestStore) FindByIDWithOffers(id string) (*models.Request, error) {
	return s.FindByID(id)
}
func (s *stubRequestStore) Find(repositories.RequestCriteria) ([]models.Request, int64, error) {
	return nil, 0, nil
}
func (s *stubRequestStore) FindRecent(int) ([]models.Request, error) { return nil, nil }
func (s *stubRequestStore) Create(*models.Request) error             { return nil }
func (s *stubRequestStore) Update(request *models.Request) error {
	s.updated = request
	return nil
}
func (s *stubRequestStore) Delete(string) error      { return nil }
func (s *stubRequestStore) CountAll() (int64, error) { return 0, nil }

type noopLogRepo struct{}

func (noopLogRepo) Create(*models.ActivityLog) error { return nil }
func (noopLogRepo) Find(repositories.LogCriteria) ([]models.ActivityLog, int64, error) {
	return nil, 0, nil
}
func (noopLogRepo) DeleteOlderThan(int) (int64, error) { return 0, nil }

type noopMatcher struct{}

func (noopMatcher) ProcessNewRequest(*models.Request) {}

func requestServiceFixture(request *models.Request) (RequestService, *stubRequestStore) {
	store := &stubRequestStore{request: request}
	svc := NewRequestService(store, noopLogRepo{}, noopMatcher{}, func(name string) string { return name })
	return svc, store
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestUpdateRequest_SetsGeofence(t *testing.T) {
	request := &models.Request{
		BaseModel: models.BaseModel{ID: "req-1"},
		UserID:    "owner",
		Content:   "looking for a road bike",
		Budget:    300,
		Currency:  models.CurrencyEUR,
	}
	svc, store := requestServiceFixture(request)

	resp, err := svc.UpdateRequest("owner", "req-1", &dto.UpdateRequestRequest{
		Longitude: floatPtr(13.405),
		Latitude:  floatPtr(52.52),
		Radius:    intPtr(5000),
	}, "10.0.0.1")
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	require.NotNil(t, store.updated.Longitude)
	assert.Equal(t, 13.405, *store.updated.Longitude)
	assert.Equal(t, 52.52, *store.updated.Latitude)
	assert.Equal(t, 5000, *store.updated.Radius)
	assert.Equal(t, 13.405, *resp.Longitude)
}

func TestUpdateRequest_ClearsGeofence(t *testing.T) {
	request := &models.Request{
		BaseModel: models.BaseModel{ID: "req-1"},
		UserID:    "owner",
		Content:   "looking for a road bike",
		Budget:    300,
		Currency:  models.CurrencyEUR,
		Longitude: floatPtr(13.405),
		Latitude:  floatPtr(52.52),
		Radius:    intPtr(5000),
	}
	svc, store := requestServiceFixture(request)

	resp, err := svc.UpdateRequest("owner", "req-1", &dto.UpdateRequestRequest{
		ClearLocation: true,
	}, "10.0.0.1")
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	assert.Nil(t, store.updated.Longitude)
	assert.Nil(t, store.updated.Latitude)
	assert.Nil(t, store.updated.Radius)
	assert.Nil(t, resp.Longitude)
}

func TestUpdateRequest_KeepsGeofenceWhenUntouched(t *testing.T) {
	request := &models.Request{
		BaseModel: models.BaseModel{ID: "req-1"},
		UserID:    "owner",
		Content:   "looking for a road bike",
		Budget:    300,
		Currency:  models.CurrencyEUR,
		Longitude: floatPtr(13.405),
		Latitude:  floatPtr(52.52),
		Radius:    intPtr(5000),
	}
	svc, store := requestServiceFixture(request)

	newContent := "looking for a gravel bike"
	_, err := svc.UpdateRequest("owner", "req-1", &dto.UpdateRequestRequest{
		Content: &newContent,
	}, "10.0.0.1")
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	assert.Equal(t, "looking for a gravel bike", store.updated.Content)
	require.NotNil(t, store.updated.Longitude)
	assert.Equal(t, 13.405, *store.updated.Longitude)
}
