package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"wantly_backend/internal/auth"
	"wantly_backend/internal/email"
	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const (
	authDomain       = "auth"
	deletionTokenTTL = 24 * time.Hour
	defaultCurrency  = models.CurrencyUSD
)

type AuthService interface {
	Register(req *dto.RegisterRequest, ip string) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest, ip string) (*dto.AuthResponse, error)
	Logout(userID, ip string)
	VerifyEmail(token string) error
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
	RequestAccountDeletion(userID string) error
	ConfirmAccountDeletion(token string) error
}

type authService struct {
	userRepo    repositories.UserRepository
	logRepo     repositories.LogRepository
	emailSender email.Sender
	frontendURL string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	logRepo repositories.LogRepository,
	emailSender email.Sender,
	frontendURL string,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		logRepo:     logRepo,
		emailSender: emailSender,
		frontendURL: frontendURL,
	}
}

func (s *authService) Register(req *dto.RegisterRequest, ip string) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, authDomain, "email already registered")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.ErrDatabase(err, authDomain)
	}
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, authDomain, "username already taken")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.ErrDatabase(err, authDomain)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token := uuid.NewString()
	user := &models.User{
		Username:          req.Username,
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      hash,
		VerificationToken: &token,
		PreferredCurrency: defaultCurrency,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.ErrDatabase(err, authDomain)
	}

	go func() {
		subject, body := email.VerificationEmail(s.frontendURL, token)
		if err := s.emailSender.Send(user.Email, subject, body); err != nil {
			logger.WithError(err).Error("Failed to send verification email", "user_id", user.ID)
		}
	}()

	go recordActivity(s.logRepo, models.LogUserRegistration, &user.ID, strPtr(ip), nil)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) Login(req *dto.LoginRequest, ip string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			go recordActivity(s.logRepo, models.LogUserLoginFailure, nil, strPtr(ip), strPtr(req.Email))
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, authDomain, "invalid email or password", http.StatusUnauthorized)
		}
		return nil, apperrors.ErrDatabase(err, authDomain)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		go recordActivity(s.logRepo, models.LogUserLoginFailure, &user.ID, strPtr(ip), nil)
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, authDomain, "invalid email or password", http.StatusUnauthorized)
	}
	if user.IsBlocked {
		return nil, apperrors.New(apperrors.CodeUserBlocked, authDomain, "account is blocked", http.StatusForbidden)
	}
	if !user.IsEmailVerified {
		return nil, apperrors.New(apperrors.CodeEmailNotVerified, authDomain, "email address is not verified", http.StatusForbidden)
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	go recordActivity(s.logRepo, models.LogUserLogin, &user.ID, strPtr(ip), nil)

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Logout only records the activity event. Tokens are stateless, the client
// discards its copy.
func (s *authService) Logout(userID, ip string) {
	go recordActivity(s.logRepo, models.LogUserLogout, &userID, strPtr(ip), nil)
}

func (s *authService) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.New(apperrors.CodeInvalidToken, authDomain, "invalid verification token", http.StatusBadRequest)
		}
		return apperrors.ErrDatabase(err, authDomain)
	}

	user.IsEmailVerified = true
	user.VerificationToken = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err, authDomain)
	}
	return nil
}

// RequestPasswordReset never reveals whether the email exists.
func (s *authService) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.ErrDatabase(err, authDomain)
	}

	token := uuid.NewString()
	user.ResetToken = &token
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err, authDomain)
	}

	go func() {
		subject, body := email.PasswordResetEmail(s.frontendURL, token)
		if err := s.emailSender.Send(user.Email, subject, body); err != nil {
			logger.WithError(err).Error("Failed to send password reset email", "user_id", user.ID)
		}
	}()
	return nil
}

func (s *authService) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.New(apperrors.CodeInvalidToken, authDomain, "invalid reset token", http.StatusBadRequest)
		}
		return apperrors.ErrDatabase(err, authDomain)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err, authDomain)
	}
	return nil
}

func (s *authService) RequestAccountDeletion(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, authDomain, "user not found")
		}
		return apperrors.ErrDatabase(err, authDomain)
	}

	token := uuid.NewString()
	expires := time.Now().Add(deletionTokenTTL)
	user.DeletionToken = &token
	user.DeletionExpiresAt = &expires
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err, authDomain)
	}

	go func() {
		subject, body := email.AccountDeletionEmail(s.frontendURL, token)
		if err := s.emailSender.Send(user.Email, subject, body); err != nil {
			logger.WithError(err).Error("Failed to send account deletion email", "user_id", user.ID)
		}
	}()
	return nil
}

func (s *authService) ConfirmAccountDeletion(token string) error {
	user, err := s.userRepo.FindByDeletionToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.New(apperrors.CodeInvalidToken, authDomain, "invalid deletion token", http.StatusBadRequest)
		}
		return apperrors.ErrDatabase(err, authDomain)
	}
	if user.DeletionExpiresAt == nil || time.Now().After(*user.DeletionExpiresAt) {
		return apperrors.New(apperrors.CodeTokenExpired, authDomain, "deletion token expired", http.StatusBadRequest)
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		return apperrors.ErrDatabase(err, authDomain)
	}
	logger.Info("Account deleted", "user_id", user.ID)
	return nil
}
