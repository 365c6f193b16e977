package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	FindByID(id string) (*models.Comment, error)
	FindByOffer(offerID string) ([]models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id string) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) FindByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) FindByOffer(offerID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Where("offer_id = ?", offerID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepositoryImpl) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
