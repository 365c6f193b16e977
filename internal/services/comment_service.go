package services

import (
	"errors"

	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const commentDomain = "comment"

type CommentService interface {
	GetComments(offerID string) ([]dto.CommentResponse, error)
	CreateComment(userID, offerID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(userID, commentID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(userID, commentID string) error
}

type commentService struct {
	commentRepo         repositories.CommentRepository
	offerRepo           repositories.OfferRepository
	notificationService NotificationService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	offerRepo repositories.OfferRepository,
	notificationService NotificationService,
) CommentService {
	return &commentService{
		commentRepo:         commentRepo,
		offerRepo:           offerRepo,
		notificationService: notificationService,
	}
}

func (s *commentService) GetComments(offerID string) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindByOffer(offerID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, commentDomain)
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.NewCommentResponse(&comments[i]))
	}
	return resp, nil
}

func (s *commentService) CreateComment(userID, offerID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	offer, err := s.offerRepo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.ErrNotFound(err, commentDomain, "offer not found")
		}
		return nil, apperrors.ErrDatabase(err, commentDomain)
	}

	comment := &models.Comment{
		OfferID: offerID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.ErrDatabase(err, commentDomain)
	}

	// Commenting on your own offer does not notify you.
	if offer.UserID != userID {
		go func() {
			if _, err := s.notificationService.Notify(NotificationInput{
				UserID:         offer.UserID,
				Type:           models.NotificationNewOfferComment,
				RelatedUserID:  &userID,
				RelatedOfferID: &offerID,
				Data: map[string]interface{}{
					"comment": comment.Content,
				},
			}); err != nil {
				logger.WithError(err).Error("Failed to notify offer owner of comment", "comment_id", comment.ID)
			}
		}()
	}

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) UpdateComment(userID, commentID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.findOwned(userID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	comment.Edited = true
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, apperrors.ErrDatabase(err, commentDomain)
	}

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) DeleteComment(userID, commentID string) error {
	if _, err := s.findOwned(userID, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(commentID); err != nil {
		return apperrors.ErrDatabase(err, commentDomain)
	}
	return nil
}

func (s *commentService) findOwned(userID, commentID string) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return nil, apperrors.ErrNotFound(err, commentDomain, "comment not found")
		}
		return nil, apperrors.ErrDatabase(err, commentDomain)
	}
	if comment.UserID != userID {
		return nil, apperrors.NewForbiddenError("not the owner of this comment")
	}
	return comment, nil
}
