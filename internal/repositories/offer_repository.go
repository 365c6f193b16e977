package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

var (
	ErrOfferNotFound        = errors.New("offer not found")
	ErrOfferAlreadyAccepted = errors.New("offer already accepted")
)

type OfferRepository interface {
	FindByID(id string) (*models.Offer, error)
	FindByRequest(requestID string) ([]models.Offer, error)
	Create(offer *models.Offer) error
	Update(offer *models.Offer) error
	Delete(id string) error
	CountAll() (int64, error)

	Accept(requestID, offerID string) (*models.AcceptedOffer, error)
	FindAccepted(requestID string) (*models.AcceptedOffer, error)

	AddImage(image *models.OfferImage) error
	FindImage(imageID string) (*models.OfferImage, error)
	DeleteImage(imageID string) error
}

type OfferRepositoryImpl struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &OfferRepositoryImpl{db: db}
}

func (r *OfferRepositoryImpl) FindByID(id string) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.Preload("User").Preload("Images").First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepositoryImpl) FindByRequest(requestID string) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.
		Preload("User").
		Preload("Images").
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepositoryImpl) Create(offer *models.Offer) error {
	return r.db.Create(offer).Error
}

func (r *OfferRepositoryImpl) Update(offer *models.Offer) error {
	return r.db.Save(offer).Error
}

func (r *OfferRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Offer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepositoryImpl) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Offer{}).Count(&total).Error
	return total, err
}

func (r *OfferRepositoryImpl) Accept(requestID, offerID string) (*models.AcceptedOffer, error) {
	var existing models.AcceptedOffer
	err := r.db.First(&existing, "request_id = ?", requestID).Error
	if err == nil {
		return nil, ErrOfferAlreadyAccepted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	accepted := &models.AcceptedOffer{RequestID: requestID, OfferID: offerID}
	if err := r.db.Create(accepted).Error; err != nil {
		return nil, err
	}
	return accepted, nil
}

func (r *OfferRepositoryImpl) FindAccepted(requestID string) (*models.AcceptedOffer, error) {
	var accepted models.AcceptedOffer
	if err := r.db.First(&accepted, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &accepted, nil
}

func (r *OfferRepositoryImpl) AddImage(image *models.OfferImage) error {
	return r.db.Create(image).Error
}

func (r *OfferRepositoryImpl) FindImage(imageID string) (*models.OfferImage, error) {
	var image models.OfferImage
	if err := r.db.First(&image, "id = ?", imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *OfferRepositoryImpl) DeleteImage(imageID string) error {
	return r.db.Delete(&models.OfferImage{}, "id = ?", imageID).Error
}
