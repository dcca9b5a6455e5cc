package dto

import "github.com/google/uuid"

// ParseDocumentMessage is the payload published to the extraction worker
// after a document upload is persisted.
type ParseDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
