package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	limiter     *middleware.RateLimiter
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, limiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		limiter:     limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.limiter.Limit("register", 5, time.Hour), h.Register)
		auth.POST("/login", h.limiter.Limit("login", 10, 15*time.Minute), h.Login)
		auth.POST("/verify-email", h.VerifyEmail)
		auth.POST("/password-reset", h.limiter.Limit("password-reset", 5, time.Hour), h.RequestPasswordReset)
		auth.POST("/password-reset/confirm", h.ResetPassword)
		auth.POST("/deletion/confirm", h.ConfirmAccountDeletion)
	}

	account := r.Group("/auth", middleware.AuthMiddleware())
	{
		account.POST("/logout", h.Logout)
		account.POST("/deletion", h.RequestAccountDeletion)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	h.authService.Logout(userID, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.VerifyEmail(req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the address exists, a reset email was sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) RequestAccountDeletion(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.RequestAccountDeletion(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "confirmation email sent"})
}

func (h *AuthHandler) ConfirmAccountDeletion(c *gin.Context) {
	var req dto.ConfirmDeletionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ConfirmAccountDeletion(req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
