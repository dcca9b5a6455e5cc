package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatSessionRequest struct {
	Title string `json:"title"`
}

type CreateChatSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type ChatSessionListItem struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	SessionId uuid.UUID
	Message   string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Reply     string    `json:"reply"`
}

type ChatMessageItem struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
