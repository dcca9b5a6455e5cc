package specification

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.UserID)
}

// SharedWithUser matches documents whose shared_with jsonb array contains
// the given user id.
type SharedWithUser struct {
	UserID uuid.UUID
}

func (s SharedWithUser) Apply(db *gorm.DB) *gorm.DB {
	needle, _ := json.Marshal([]uuid.UUID{s.UserID})
	return db.Where("shared_with @> ?", string(needle))
}

// AccessibleBy matches documents the user owns or has been shared.
type AccessibleBy struct {
	UserID uuid.UUID
}

func (s AccessibleBy) Apply(db *gorm.DB) *gorm.DB {
	needle, _ := json.Marshal([]uuid.UUID{s.UserID})
	return db.Where("owner_id = ? OR shared_with @> ?", s.UserID, string(needle))
}

type DocumentsInCompany struct {
	CompanyID uuid.UUID
}

func (s DocumentsInCompany) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}
