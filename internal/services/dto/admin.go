package dto

import (
	"time"

	"wantly_backend/internal/models"
)

type PlatformStatsResponse struct {
	Users         int64 `json:"users"`
	Requests      int64 `json:"requests"`
	Offers        int64 `json:"offers"`
	Alerts        int64 `json:"alerts"`
	Messages      int64 `json:"messages"`
	Notifications int64 `json:"notifications"`
}

type ActivityLogsQuery struct {
	Type     string `form:"type"`
	UserID   string `form:"user_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ActivityLogResponse struct {
	ID        string         `json:"id"`
	Type      models.LogType `json:"type"`
	UserID    *string        `json:"user_id,omitempty"`
	IP        *string        `json:"ip,omitempty"`
	Content   *string        `json:"content,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewActivityLogResponse(l *models.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ID:        l.ID,
		Type:      l.Type,
		UserID:    l.UserID,
		IP:        l.IP,
		Content:   l.Content,
		CreatedAt: l.CreatedAt,
	}
}

type ActivityLogListResponse struct {
	Logs     []ActivityLogResponse `json:"logs"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

type SetBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
