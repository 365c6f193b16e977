package services

import (
	"errors"

	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const reviewDomain = "review"

type ReviewService interface {
	GetReviewsForUser(reviewedUserID string) ([]dto.ReviewResponse, error)
	CreateReview(reviewerUserID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(reviewerUserID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(reviewerUserID, reviewID string) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *reviewService) GetReviewsForUser(reviewedUserID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByReviewed(reviewedUserID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, reviewDomain)
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, dto.NewReviewResponse(&reviews[i]))
	}
	return resp, nil
}

func (s *reviewService) CreateReview(reviewerUserID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if reviewerUserID == req.ReviewedUserID {
		return nil, apperrors.ErrInvalidOperation(reviewDomain, "cannot review yourself")
	}

	if _, err := s.userRepo.FindByID(req.ReviewedUserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, reviewDomain, "reviewed user not found")
		}
		return nil, apperrors.ErrDatabase(err, reviewDomain)
	}

	if _, err := s.reviewRepo.FindByPair(reviewerUserID, req.ReviewedUserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrReviewAlreadyExists, reviewDomain, "you already reviewed this user")
	} else if !errors.Is(err, repositories.ErrReviewNotFound) {
		return nil, apperrors.ErrDatabase(err, reviewDomain)
	}

	review := &models.Review{
		ReviewerUserID: reviewerUserID,
		ReviewedUserID: req.ReviewedUserID,
		Rating:         req.Rating,
		Content:        req.Content,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.ErrDatabase(err, reviewDomain)
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(reviewerUserID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.findOwned(reviewerUserID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Content != nil {
		review.Content = req.Content
	}
	review.Edited = true

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, apperrors.ErrDatabase(err, reviewDomain)
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(reviewerUserID, reviewID string) error {
	if _, err := s.findOwned(reviewerUserID, reviewID); err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return apperrors.ErrDatabase(err, reviewDomain)
	}
	return nil
}

func (s *reviewService) findOwned(reviewerUserID, reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err, reviewDomain, "review not found")
		}
		return nil, apperrors.ErrDatabase(err, reviewDomain)
	}
	if review.ReviewerUserID != reviewerUserID {
		return nil, apperrors.NewForbiddenError("not the author of this review")
	}
	return review, nil
}
