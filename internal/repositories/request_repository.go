package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

var ErrRequestNotFound = errors.New("request not found")

// RequestCriteria filters the public request listing.
type RequestCriteria struct {
	Content  string `form:"content"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

type RequestRepository interface {
	FindByID(id string) (*models.Request, error)
	FindByIDWithOffers(id string) (*models.Request, error)
	Find(criteria RequestCriteria) ([]models.Request, int64, error)
	FindRecent(limit int) ([]models.Request, error)
	Create(request *models.Request) error
	Update(request *models.Request) error
	Delete(id string) error
	CountAll() (int64, error)
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.Request, error) {
	var request models.Request
	if err := r.db.Preload("User").First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindByIDWithOffers(id string) (*models.Request, error) {
	var request models.Request
	err := r.db.
		Preload("User").
		Preload("Offers", func(db *gorm.DB) *gorm.DB { return db.Order("offers.created_at ASC") }).
		Preload("Offers.User").
		Preload("Offers.Images").
		Preload("Offers.Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.created_at ASC") }).
		Preload("Offers.Comments.User").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) Find(criteria RequestCriteria) ([]models.Request, int64, error) {
	query := r.db.Model(&models.Request{})
	if criteria.Content != "" {
		query = query.Where("content ILIKE ?", "%"+criteria.Content+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	var requests []models.Request
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&requests).Error
	return requests, total, err
}

func (r *RequestRepositoryImpl) FindRecent(limit int) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

func (r *RequestRepositoryImpl) Update(request *models.Request) error {
	return r.db.Save(request).Error
}

func (r *RequestRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Request{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Request{}).Count(&total).Error
	return total, err
}
