package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wantly_backend/internal/geo"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
)

type stubAlertStore struct {
	alert   *models.Alert
	updated *models.Alert
}

func (s *stubAlertStore) FindByID(id string) (*models.Alert, error) {
	if s.alert == nil || s.alert.ID != id {
		return nil, repositories.ErrAlertNotFound
	}
	return s.alert, nil
}
func (s *stubAlertStore) FindByUser(string) ([]models.Alert, error) { return nil, nil }
func (s *stubAlertStore) FindCandidates(string, *geo.Point, *int) ([]models.Alert, error) {
	return nil, nil
}
func (s *stubAlertStore) Create(*models.Alert) error { return nil }
func (s *stubAlertStore) Update(alert *models.Alert) error {
	s.updated = alert
	return nil
}
func (s *stubAlertStore) Delete(string) error      { return nil }
func (s *stubAlertStore) CountAll() (int64, error) { return 0, nil }

func alertServiceFixture(alert *models.Alert) (AlertService, *stubAlertStore) {
	store := &stubAlertStore{alert: alert}
	svc := NewAlertService(store, &stubRequestStore{}, &stubRates{})
	return svc, store
}

func TestUpdateAlert_SetsGeofence(t *testing.T) {
	alert := &models.Alert{
		BaseModel:            models.BaseModel{ID: "alert-1"},
		UserID:               "owner",
		Content:              "bike",
		Budget:               100,
		Currency:             models.CurrencyEUR,
		BudgetComparisonMode: models.ComparisonGreaterThan,
	}
	svc, store := alertServiceFixture(alert)

	resp, err := svc.UpdateAlert("owner", "alert-1", &dto.UpdateAlertRequest{
		Longitude: floatPtr(2.3522),
		Latitude:  floatPtr(48.8566),
		Radius:    intPtr(10000),
	})
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	require.NotNil(t, store.updated.Longitude)
	assert.Equal(t, 2.3522, *store.updated.Longitude)
	assert.Equal(t, 48.8566, *store.updated.Latitude)
	assert.Equal(t, 10000, *store.updated.Radius)
	assert.Equal(t, 2.3522, *resp.Longitude)
}

func TestUpdateAlert_ClearsGeofence(t *testing.T) {
	alert := &models.Alert{
		BaseModel:            models.BaseModel{ID: "alert-1"},
		UserID:               "owner",
		Content:              "bike",
		Budget:               100,
		Currency:             models.CurrencyEUR,
		BudgetComparisonMode: models.ComparisonGreaterThan,
		Longitude:            floatPtr(2.3522),
		Latitude:             floatPtr(48.8566),
		Radius:               intPtr(10000),
	}
	svc, store := alertServiceFixture(alert)

	resp, err := svc.UpdateAlert("owner", "alert-1", &dto.UpdateAlertRequest{
		ClearLocation: true,
	})
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	assert.Nil(t, store.updated.Longitude)
	assert.Nil(t, store.updated.Latitude)
	assert.Nil(t, store.updated.Radius)
	assert.Nil(t, resp.Longitude)
}

func TestUpdateAlert_NotOwnerForbidden(t *testing.T) {
	alert := &models.Alert{
		BaseModel: models.BaseModel{ID: "alert-1"},
		UserID:    "owner",
		Content:   "bike",
	}
	svc, store := alertServiceFixture(alert)

	_, err := svc.UpdateAlert("someone-else", "alert-1", &dto.UpdateAlertRequest{
		ClearLocation: true,
	})
	require.Error(t, err)
	assert.Nil(t, store.updated)
}
