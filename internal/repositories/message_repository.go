package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	FindByID(id string) (*models.Message, error)
	FindConversation(userA, userB string, limit, offset int) ([]models.Message, error)
	// FindContacts returns the IDs of every user the given user has
	// exchanged messages with.
	FindContacts(userID string) ([]string, error)
	Create(message *models.Message) error
	Update(message *models.Message) error
	Delete(id string) error
	CountAll() (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindConversation(userA, userB string, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindContacts(userID string) ([]string, error) {
	var contacts []string
	err := r.db.Raw(`
		SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS contact_id
		FROM messages
		WHERE sender_id = ? OR receiver_id = ?`,
		userID, userID, userID).
		Scan(&contacts).Error
	return contacts, err
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

func (r *MessageRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Message{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Message{}).Count(&total).Error
	return total, err
}
