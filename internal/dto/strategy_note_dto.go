package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStrategyNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type CreateStrategyNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateStrategyNoteRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type ShowStrategyNoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	AuthorId  uuid.UUID  `json:"author_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
