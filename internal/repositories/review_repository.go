package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists")
)

type ReviewRepository interface {
	FindByID(id string) (*models.Review, error)
	FindByReviewed(reviewedUserID string) ([]models.Review, error)
	FindByPair(reviewerUserID, reviewedUserID string) (*models.Review, error)
	AverageRating(reviewedUserID string) (float64, int64, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id string) error
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.Preload("Reviewer").First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByReviewed(reviewedUserID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").
		Where("reviewed_user_id = ?", reviewedUserID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByPair(reviewerUserID, reviewedUserID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "reviewer_user_id = ? AND reviewed_user_id = ?", reviewerUserID, reviewedUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) AverageRating(reviewedUserID string) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("reviewed_user_id = ?", reviewedUserID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
