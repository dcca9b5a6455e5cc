package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Document struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	OwnerId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName      string         `gorm:"type:varchar(512);not null"`
	StoragePath   string         `gorm:"type:varchar(1024);not null"`
	MimeType      string         `gorm:"type:varchar(255)"`
	FileSize      int64          `gorm:"not null;default:0"`
	ParsedContent *string        `gorm:"type:text"`
	ParseMethod   *string        `gorm:"type:varchar(32)"`
	SharedWith    datatypes.JSON `gorm:"type:jsonb"` // JSON array of user UUIDs
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
