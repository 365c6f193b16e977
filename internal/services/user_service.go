package services

import (
	"errors"

	"wantly_backend/internal/auth"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const userDomain = "user"

type UserService interface {
	GetMe(userID string) (*dto.UserResponse, error)
	GetProfile(userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
}

type userService struct {
	userRepo   repositories.UserRepository
	reviewRepo repositories.ReviewRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
) UserService {
	return &userService{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *userService) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) GetProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByReviewed(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, userDomain)
	}
	average, _, err := s.reviewRepo.AverageRating(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, userDomain)
	}

	resp := &dto.UserProfileResponse{
		PublicUserResponse: dto.NewPublicUserResponse(user),
		AverageRating:      average,
		Reviews:            make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, dto.NewReviewResponse(&reviews[i]))
	}
	return resp, nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(*req.Username); err == nil {
			return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, userDomain, "username already taken")
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrDatabase(err, userDomain)
		}
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PreferredCurrency != nil {
		user.PreferredCurrency = models.Currency(*req.PreferredCurrency)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrDatabase(err, userDomain)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.NewBadRequestError("current password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err, userDomain)
	}
	return nil
}

func (s *userService) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, userDomain, "user not found")
		}
		return nil, apperrors.ErrDatabase(err, userDomain)
	}
	return user, nil
}
