package database

import (
	"fmt"

	"gorm.io/gorm"

	"wantly_backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. The uuid-ossp
// extension must exist first because primary keys default to
// uuid_generate_v4().
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Alert{},
		&models.Offer{},
		&models.AcceptedOffer{},
		&models.OfferImage{},
		&models.Comment{},
		&models.Review{},
		&models.Message{},
		&models.Notification{},
		&models.ActivityLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
