package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "model"
)

type ChatSession struct {
	Id        uuid.UUID
	CompanyId uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string // ChatRoleUser | ChatRoleAssistant
	Content   string
	CreatedAt time.Time
}
