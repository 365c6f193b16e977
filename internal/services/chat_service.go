package services

import (
	"errors"

	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const chatDomain = "chat"

type ChatService interface {
	SendMessage(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetConversation(userID, otherUserID string, query *dto.ConversationQuery) ([]dto.MessageResponse, error)
	GetContacts(userID string) (*dto.ContactsResponse, error)
	UpdateMessage(userID, messageID string, req *dto.UpdateMessageRequest) (*dto.MessageResponse, error)
	DeleteMessage(userID, messageID string) error
}

type chatService struct {
	messageRepo         repositories.MessageRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
	notifier            RealtimeNotifier
}

func NewChatService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
	notifier RealtimeNotifier,
) ChatService {
	return &chatService{
		messageRepo:         messageRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		notifier:            notifier,
	}
}

func (s *chatService) SendMessage(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrInvalidOperation(chatDomain, "cannot message yourself")
	}

	receiver, err := s.userRepo.FindByID(req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, chatDomain, "receiver not found")
		}
		return nil, apperrors.ErrDatabase(err, chatDomain)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.ErrDatabase(err, chatDomain)
	}

	resp := dto.NewMessageResponse(message)
	s.notifier.SendToUser(receiver.ID, EventNewMessage, resp)

	go func() {
		if _, err := s.notificationService.Notify(NotificationInput{
			UserID:        receiver.ID,
			Type:          models.NotificationNewMessage,
			RelatedUserID: &senderID,
		}); err != nil {
			logger.WithError(err).Error("Failed to notify receiver of new message", "message_id", message.ID)
		}
	}()

	return &resp, nil
}

func (s *chatService) GetConversation(userID, otherUserID string, query *dto.ConversationQuery) ([]dto.MessageResponse, error) {
	limit := query.PageSize
	offset := (query.Page - 1) * query.PageSize

	messages, err := s.messageRepo.FindConversation(userID, otherUserID, limit, offset)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, chatDomain)
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, dto.NewMessageResponse(&messages[i]))
	}
	return resp, nil
}

func (s *chatService) GetContacts(userID string) (*dto.ContactsResponse, error) {
	ids, err := s.messageRepo.FindContacts(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, chatDomain)
	}

	resp := &dto.ContactsResponse{Contacts: make([]dto.PublicUserResponse, 0, len(ids))}
	for _, id := range ids {
		user, err := s.userRepo.FindByID(id)
		if err != nil {
			// A deleted contact simply drops out of the list.
			if errors.Is(err, repositories.ErrUserNotFound) {
				continue
			}
			return nil, apperrors.ErrDatabase(err, chatDomain)
		}
		resp.Contacts = append(resp.Contacts, dto.NewPublicUserResponse(user))
	}
	return resp, nil
}

func (s *chatService) UpdateMessage(userID, messageID string, req *dto.UpdateMessageRequest) (*dto.MessageResponse, error) {
	message, err := s.findOwned(userID, messageID)
	if err != nil {
		return nil, err
	}

	message.Content = req.Content
	message.Edited = true
	if err := s.messageRepo.Update(message); err != nil {
		return nil, apperrors.ErrDatabase(err, chatDomain)
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

func (s *chatService) DeleteMessage(userID, messageID string) error {
	if _, err := s.findOwned(userID, messageID); err != nil {
		return err
	}
	if err := s.messageRepo.Delete(messageID); err != nil {
		return apperrors.ErrDatabase(err, chatDomain)
	}
	return nil
}

func (s *chatService) findOwned(userID, messageID string) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrNotFound(err, chatDomain, "message not found")
		}
		return nil, apperrors.ErrDatabase(err, chatDomain)
	}
	if message.SenderID != userID {
		return nil, apperrors.NewForbiddenError("not the sender of this message")
	}
	return message, nil
}
