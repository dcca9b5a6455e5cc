package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadDocumentResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
}

type DocumentListItem struct {
	Id          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	MimeType    string    `json:"mime_type"`
	FileSize    int64     `json:"file_size"`
	OwnerId     uuid.UUID `json:"owner_id"`
	Parsed      bool      `json:"parsed"`
	SharedCount int       `json:"shared_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ShowDocumentResponse struct {
	Id            uuid.UUID   `json:"id"`
	FileName      string      `json:"file_name"`
	MimeType      string      `json:"mime_type"`
	FileSize      int64       `json:"file_size"`
	OwnerId       uuid.UUID   `json:"owner_id"`
	ParsedContent *string     `json:"parsed_content"`
	ParseMethod   *string     `json:"parse_method"`
	SharedWith    []uuid.UUID `json:"shared_with"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at"`
}

type ShareDocumentRequest struct {
	Id      uuid.UUID
	UserIds []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

type UnshareDocumentRequest struct {
	Id      uuid.UUID
	UserIds []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}
