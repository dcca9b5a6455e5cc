package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StrategyNote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (StrategyNote) TableName() string {
	return "strategy_notes"
}
