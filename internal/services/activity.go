package services

import (
	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
)

// recordActivity writes an audit row. Logging failures never surface to
// the caller.
func recordActivity(logRepo repositories.LogRepository, logType models.LogType, userID, ip, content *string) {
	entry := &models.ActivityLog{
		Type:    logType,
		UserID:  userID,
		IP:      ip,
		Content: content,
	}
	if err := logRepo.Create(entry); err != nil {
		logger.WithError(err).Warn("Failed to write activity log", "type", string(logType))
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
