package entity

import (
	"time"

	"github.com/google/uuid"
)

type StrategyNote struct {
	Id        uuid.UUID
	CompanyId uuid.UUID
	AuthorId  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
