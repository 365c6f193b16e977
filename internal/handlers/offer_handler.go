package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wantly_backend/internal/middleware"
	"wantly_backend/internal/services"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const maxImageSize = 10 << 20 // 10 MiB

type OfferHandler struct {
	*BaseHandler
	offerService services.OfferService
}

func NewOfferHandler(base *BaseHandler, offerService services.OfferService) *OfferHandler {
	return &OfferHandler{
		BaseHandler:  base,
		offerService: offerService,
	}
}

func (h *OfferHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/offers/:offerId", h.GetOffer)

	protected := r.Group("", middleware.AuthMiddleware())
	{
		protected.POST("/requests/:requestId/offers", h.CreateOffer)
		protected.PATCH("/offers/:offerId", h.UpdateOffer)
		protected.DELETE("/offers/:offerId", h.DeleteOffer)
		protected.POST("/requests/:requestId/offers/:offerId/accept", h.AcceptOffer)
		protected.POST("/offers/:offerId/images", h.UploadImage)
		protected.DELETE("/offers/:offerId/images/:imageId", h.DeleteImage)
	}
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	resp, err := h.offerService.GetOffer(c.Param("offerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.offerService.CreateOffer(userID, c.Param("requestId"), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOfferRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.offerService.UpdateOffer(userID, c.Param("offerId"), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.offerService.DeleteOffer(userID, c.Param("offerId"), c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}

func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.offerService.AcceptOffer(userID, c.Param("requestId"), c.Param("offerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offer accepted"})
}

func (h *OfferHandler) UploadImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing 'image' form file"))
		return
	}
	if file.Size > maxImageSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("image exceeds the 10 MiB limit"))
		return
	}

	src, err := file.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer src.Close()

	resp, err := h.offerService.UploadImage(c.Request.Context(), userID, c.Param("offerId"), file.Filename, src)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OfferHandler) DeleteImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.offerService.DeleteImage(c.Request.Context(), userID, c.Param("offerId"), c.Param("imageId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}
