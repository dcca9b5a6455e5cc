package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract for all domain events flowing over the bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Domain event types.
const (
	TypeUserRegistered   = "USER_REGISTERED"
	TypeDocumentUploaded = "DOCUMENT_UPLOADED"
	TypeDocumentParsed   = "DOCUMENT_PARSED"
	TypeDocumentShared   = "DOCUMENT_SHARED"
	TypeNewsRefreshed    = "NEWS_REFRESHED"
)

func UserRegistered(userId, companyId uuid.UUID, email string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id":    userId,
			"company_id": companyId,
			"email":      email,
		},
		OccurredAt: time.Now(),
	}
}

func DocumentUploaded(docId, ownerId uuid.UUID, fileName string) Event {
	return BaseEvent{
		Type: TypeDocumentUploaded,
		Data: map[string]interface{}{
			"document_id": docId,
			"user_id":     ownerId,
			"file_name":   fileName,
		},
		OccurredAt: time.Now(),
	}
}

func DocumentParsed(docId, ownerId uuid.UUID, method string, ok bool) Event {
	return BaseEvent{
		Type: TypeDocumentParsed,
		Data: map[string]interface{}{
			"document_id": docId,
			"user_id":     ownerId,
			"method":      method,
			"success":     ok,
		},
		OccurredAt: time.Now(),
	}
}

func DocumentShared(docId, ownerId, targetUserId uuid.UUID, fileName string) Event {
	return BaseEvent{
		Type: TypeDocumentShared,
		Data: map[string]interface{}{
			"document_id": docId,
			"owner_id":    ownerId,
			"user_id":     targetUserId,
			"file_name":   fileName,
		},
		OccurredAt: time.Now(),
	}
}

func NewsRefreshed(companyId uuid.UUID, date string, succeeded bool) Event {
	return BaseEvent{
		Type: TypeNewsRefreshed,
		Data: map[string]interface{}{
			"company_id": companyId,
			"news_date":  date,
			"success":    succeeded,
		},
		OccurredAt: time.Now(),
	}
}
