package repositories

import (
	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

type LogCriteria struct {
	Type     *models.LogType
	UserID   *string
	Page     int
	PageSize int
}

type LogRepository interface {
	Create(entry *models.ActivityLog) error
	Find(criteria LogCriteria) ([]models.ActivityLog, int64, error)
	DeleteOlderThan(days int) (int64, error)
}

type LogRepositoryImpl struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &LogRepositoryImpl{db: db}
}

func (r *LogRepositoryImpl) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *LogRepositoryImpl) Find(criteria LogCriteria) ([]models.ActivityLog, int64, error) {
	query := r.db.Model(&models.ActivityLog{})
	if criteria.Type != nil {
		query = query.Where("type = ?", *criteria.Type)
	}
	if criteria.UserID != nil {
		query = query.Where("user_id = ?", *criteria.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ActivityLog
	err := query.
		Order("created_at DESC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&logs).Error
	return logs, total, err
}

func (r *LogRepositoryImpl) DeleteOlderThan(days int) (int64, error) {
	result := r.db.
		Where("created_at < NOW() - (? * INTERVAL '1 day')", days).
		Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}
