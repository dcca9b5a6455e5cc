package dto

import (
	"time"

	"github.com/google/uuid"
)

// Log IDs are MD5 hashes of the raw log line, not UUIDs.

type LogListResponse struct {
	Id        string `json:"id"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}

type AdminCompanyListItem struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	UserCount int64     `json:"user_count"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUserListItem struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVE DISABLED"`
}
