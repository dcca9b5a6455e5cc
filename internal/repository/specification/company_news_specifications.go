package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCompanyAndDate struct {
	CompanyID uuid.UUID
	NewsDate  string
}

func (s ByCompanyAndDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ? AND news_date = ?", s.CompanyID, s.NewsDate)
}

type NewsForCompany struct {
	CompanyID uuid.UUID
}

func (s NewsForCompany) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}
