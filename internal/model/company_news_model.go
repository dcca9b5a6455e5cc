package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanyNews struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_news_day"`
	NewsDate  string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_company_news_day"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CompanyNews) TableName() string {
	return "company_news"
}
