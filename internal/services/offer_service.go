package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/internal/storage"
	"wantly_backend/pkg/apperrors"
)

const offerDomain = "offer"

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type OfferService interface {
	GetOffer(offerID string) (*dto.OfferResponse, error)
	CreateOffer(userID, requestID string, req *dto.CreateOfferRequest, ip string) (*dto.OfferResponse, error)
	UpdateOffer(userID, offerID string, req *dto.UpdateOfferRequest, ip string) (*dto.OfferResponse, error)
	DeleteOffer(userID, offerID string, ip string) error
	AcceptOffer(userID, requestID, offerID string) error
	UploadImage(ctx context.Context, userID, offerID, filename string, reader io.Reader) (*dto.OfferImageResponse, error)
	DeleteImage(ctx context.Context, userID, offerID, imageID string) error
	ImageURL(name string) string
}

type offerService struct {
	offerRepo           repositories.OfferRepository
	requestRepo         repositories.RequestRepository
	logRepo             repositories.LogRepository
	notificationService NotificationService
	store               storage.Storage
}

func NewOfferService(
	offerRepo repositories.OfferRepository,
	requestRepo repositories.RequestRepository,
	logRepo repositories.LogRepository,
	notificationService NotificationService,
	store storage.Storage,
) OfferService {
	return &offerService{
		offerRepo:           offerRepo,
		requestRepo:         requestRepo,
		logRepo:             logRepo,
		notificationService: notificationService,
		store:               store,
	}
}

func (s *offerService) GetOffer(offerID string) (*dto.OfferResponse, error) {
	offer, err := s.findOffer(offerID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewOfferResponse(offer, s.ImageURL)
	return &resp, nil
}

func (s *offerService) CreateOffer(userID, requestID string, req *dto.CreateOfferRequest, ip string) (*dto.OfferResponse, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err, offerDomain, "request not found")
		}
		return nil, apperrors.ErrDatabase(err, offerDomain)
	}
	if request.UserID == userID {
		return nil, apperrors.ErrInvalidOperation(offerDomain, "cannot make an offer on your own request")
	}

	offer := &models.Offer{
		RequestID:   requestID,
		UserID:      userID,
		Content:     req.Content,
		Price:       req.Price,
		Negotiation: req.Negotiation,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, apperrors.ErrDatabase(err, offerDomain)
	}

	go func() {
		if _, err := s.notificationService.Notify(NotificationInput{
			UserID:           request.UserID,
			Type:             models.NotificationNewOffer,
			RelatedUserID:    &userID,
			RelatedRequestID: &requestID,
			RelatedOfferID:   &offer.ID,
			Data: map[string]interface{}{
				"request_content": request.Content,
				"price":           offer.Price,
			},
		}); err != nil {
			logger.WithError(err).Error("Failed to notify request owner of new offer", "offer_id", offer.ID)
		}
	}()

	go recordActivity(s.logRepo, models.LogOfferCreate, &userID, strPtr(ip), strPtr(offer.ID))

	resp := dto.NewOfferResponse(offer, s.ImageURL)
	return &resp, nil
}

func (s *offerService) UpdateOffer(userID, offerID string, req *dto.UpdateOfferRequest, ip string) (*dto.OfferResponse, error) {
	offer, err := s.findOwned(userID, offerID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		offer.Content = *req.Content
	}
	if req.Price != nil {
		offer.Price = *req.Price
	}
	if req.Negotiation != nil {
		offer.Negotiation = *req.Negotiation
	}

	if err := s.offerRepo.Update(offer); err != nil {
		return nil, apperrors.ErrDatabase(err, offerDomain)
	}

	go recordActivity(s.logRepo, models.LogOfferUpdate, &userID, strPtr(ip), strPtr(offer.ID))

	resp := dto.NewOfferResponse(offer, s.ImageURL)
	return &resp, nil
}

func (s *offerService) DeleteOffer(userID, offerID string, ip string) error {
	if _, err := s.findOwned(userID, offerID); err != nil {
		return err
	}
	if err := s.offerRepo.Delete(offerID); err != nil {
		return apperrors.ErrDatabase(err, offerDomain)
	}

	go recordActivity(s.logRepo, models.LogOfferDelete, &userID, strPtr(ip), strPtr(offerID))
	return nil
}

// AcceptOffer lets the request owner accept exactly one offer.
func (s *offerService) AcceptOffer(userID, requestID, offerID string) error {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrNotFound(err, offerDomain, "request not found")
		}
		return apperrors.ErrDatabase(err, offerDomain)
	}
	if request.UserID != userID {
		return apperrors.NewForbiddenError("only the request owner can accept an offer")
	}

	offer, err := s.findOffer(offerID)
	if err != nil {
		return err
	}
	if offer.RequestID != requestID {
		return apperrors.ErrInvalidOperation(offerDomain, "offer does not belong to this request")
	}

	if _, err := s.offerRepo.Accept(requestID, offerID); err != nil {
		if errors.Is(err, repositories.ErrOfferAlreadyAccepted) {
			return apperrors.ErrConflict(offerDomain, "an offer was already accepted for this request")
		}
		return apperrors.ErrDatabase(err, offerDomain)
	}

	go func() {
		if _, err := s.notificationService.Notify(NotificationInput{
			UserID:           offer.UserID,
			Type:             models.NotificationOfferAccepted,
			RelatedUserID:    &userID,
			RelatedRequestID: &requestID,
			RelatedOfferID:   &offerID,
			Data: map[string]interface{}{
				"request_content": request.Content,
			},
		}); err != nil {
			logger.WithError(err).Error("Failed to notify offer owner of acceptance", "offer_id", offerID)
		}
	}()
	return nil
}

func (s *offerService) UploadImage(ctx context.Context, userID, offerID, filename string, reader io.Reader) (*dto.OfferImageResponse, error) {
	offer, err := s.findOwned(userID, offerID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return nil, apperrors.NewBadRequestError("unsupported image type")
	}

	name := fmt.Sprintf("offers/%s/%s%s", offer.ID, uuid.NewString(), ext)
	if err := s.store.Save(ctx, name, reader, contentType); err != nil {
		return nil, apperrors.ErrExternalService(err, offerDomain, "failed to store image")
	}

	image := &models.OfferImage{OfferID: offer.ID, Name: name}
	if err := s.offerRepo.AddImage(image); err != nil {
		if delErr := s.store.Delete(ctx, name); delErr != nil {
			logger.WithError(delErr).Warn("Failed to clean up orphaned image", "name", name)
		}
		return nil, apperrors.ErrDatabase(err, offerDomain)
	}

	return &dto.OfferImageResponse{
		ID:   image.ID,
		Name: image.Name,
		URL:  s.ImageURL(image.Name),
	}, nil
}

func (s *offerService) DeleteImage(ctx context.Context, userID, offerID, imageID string) error {
	if _, err := s.findOwned(userID, offerID); err != nil {
		return err
	}

	image, err := s.offerRepo.FindImage(imageID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return apperrors.ErrNotFound(err, offerDomain, "image not found")
		}
		return apperrors.ErrDatabase(err, offerDomain)
	}
	if image.OfferID != offerID {
		return apperrors.ErrInvalidOperation(offerDomain, "image does not belong to this offer")
	}

	if err := s.offerRepo.DeleteImage(imageID); err != nil {
		return apperrors.ErrDatabase(err, offerDomain)
	}
	if err := s.store.Delete(ctx, image.Name); err != nil {
		logger.WithError(err).Warn("Failed to delete stored image", "name", image.Name)
	}
	return nil
}

func (s *offerService) ImageURL(name string) string {
	return s.store.URL(name)
}

func (s *offerService) findOffer(offerID string) (*models.Offer, error) {
	offer, err := s.offerRepo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.ErrNotFound(err, offerDomain, "offer not found")
		}
		return nil, apperrors.ErrDatabase(err, offerDomain)
	}
	return offer, nil
}

func (s *offerService) findOwned(userID, offerID string) (*models.Offer, error) {
	offer, err := s.findOffer(offerID)
	if err != nil {
		return nil, err
	}
	if offer.UserID != userID {
		return nil, apperrors.NewForbiddenError("not the owner of this offer")
	}
	return offer, nil
}
