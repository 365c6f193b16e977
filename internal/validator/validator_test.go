package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wantly_backend/internal/services/dto"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidate_GeofenceTrioAllOrNone(t *testing.T) {
	v := New()

	t.Run("full trio passes", func(t *testing.T) {
		err := v.Validate(&dto.UpdateRequestRequest{
			Longitude: floatPtr(13.405),
			Latitude:  floatPtr(52.52),
			Radius:    intPtr(5000),
		})
		assert.NoError(t, err)
	})

	t.Run("partial trio fails", func(t *testing.T) {
		err := v.Validate(&dto.UpdateRequestRequest{
			Longitude: floatPtr(13.405),
		})
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors, "latitude")
		assert.Contains(t, vErr.Errors, "radius")
	})

	t.Run("alert partial trio fails", func(t *testing.T) {
		err := v.Validate(&dto.UpdateAlertRequest{
			Latitude: floatPtr(52.52),
			Radius:   intPtr(5000),
		})
		require.Error(t, err)
	})
}

func TestValidate_ClearLocationExcludesTrio(t *testing.T) {
	v := New()

	t.Run("clear alone passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(&dto.UpdateRequestRequest{ClearLocation: true}))
		assert.NoError(t, v.Validate(&dto.UpdateAlertRequest{ClearLocation: true}))
	})

	t.Run("clear combined with trio fails", func(t *testing.T) {
		err := v.Validate(&dto.UpdateRequestRequest{
			ClearLocation: true,
			Longitude:     floatPtr(13.405),
			Latitude:      floatPtr(52.52),
			Radius:        intPtr(5000),
		})
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors, "clear_location")
	})
}
