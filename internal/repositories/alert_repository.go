package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wantly_backend/internal/geo"
	"wantly_backend/internal/models"
)

var ErrAlertNotFound = errors.New("alert not found")

// haversineOverlapSQL is the coarse geofence pre-filter: great-circle
// distance between the alert's center and the request's center, compared to
// the sum of both radii. Mirrors the authoritative in-process predicate;
// anything the formula lets through is re-validated by the matcher.
const haversineOverlapSQL = `
longitude IS NULL OR
2 * 6371000 * asin(sqrt(
	power(sin(radians(latitude - ?) / 2), 2) +
	cos(radians(?)) * cos(radians(latitude)) * power(sin(radians(longitude - ?) / 2), 2)
)) <= radius + ?`

// keywordOverlapSQL checks that the alert keyword occurs inside the request
// content as a literal substring. LIKE metacharacters in the keyword must be
// escaped (backslash first, so the wildcard escapes are not doubled), or a
// keyword like `a\b` would under-select and lose a true match.
const keywordOverlapSQL = `? ILIKE '%' || replace(replace(replace(content, '\', '\\'), '%', '\%'), '_', '\_') || '%'`

type AlertRepository interface {
	FindByID(id string) (*models.Alert, error)
	FindByUser(userID string) ([]models.Alert, error)
	// FindCandidates returns a superset of the alerts that can match a
	// request with the given content and geofence. False positives are
	// harmless (the matcher re-validates); false negatives would lose
	// notifications, so the query must never under-select.
	FindCandidates(content string, location *geo.Point, radius *int) ([]models.Alert, error)
	Create(alert *models.Alert) error
	Update(alert *models.Alert) error
	Delete(id string) error
	CountAll() (int64, error)
}

type AlertRepositoryImpl struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &AlertRepositoryImpl{db: db}
}

func (r *AlertRepositoryImpl) FindByID(id string) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepositoryImpl) FindByUser(userID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepositoryImpl) FindCandidates(content string, location *geo.Point, radius *int) ([]models.Alert, error) {
	// Keyword: the alert keyword must occur inside the request content.
	query := r.db.Where(keywordOverlapSQL, content)

	// Geofence: only constrain geolocated requests. Global requests can
	// still match global alerts, and the matcher excludes geolocated
	// alerts for them anyway.
	if location != nil && radius != nil {
		query = query.Where(haversineOverlapSQL,
			location.Latitude, location.Latitude, location.Longitude, *radius)
	}

	var alerts []models.Alert
	err := query.Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepositoryImpl) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

func (r *AlertRepositoryImpl) Update(alert *models.Alert) error {
	return r.db.Save(alert).Error
}

func (r *AlertRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Alert{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepositoryImpl) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Alert{}).Count(&total).Error
	return total, err
}
