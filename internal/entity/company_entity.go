package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant boundary. Every user, document, strategy note and
// generated news item belongs to exactly one company.
type Company struct {
	Id        uuid.UUID
	Name      string
	Industry  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
