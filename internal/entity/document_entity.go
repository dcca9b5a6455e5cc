package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id            uuid.UUID
	CompanyId     uuid.UUID // immutable after creation
	OwnerId       uuid.UUID
	FileName      string
	StoragePath   string
	MimeType      string
	FileSize      int64
	ParsedContent *string // nil until extraction succeeds
	ParseMethod   *string
	SharedWith    []uuid.UUID // never contains OwnerId
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}

// IsSharedWith reports whether userId is in the share list.
func (d *Document) IsSharedWith(userId uuid.UUID) bool {
	for _, id := range d.SharedWith {
		if id == userId {
			return true
		}
	}
	return false
}
