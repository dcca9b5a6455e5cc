package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyNews is one day's generated news digest for one company.
// (CompanyId, NewsDate) is unique; its presence is the dedup marker the daily
// batch run checks before attempting a company.
type CompanyNews struct {
	Id        uuid.UUID
	CompanyId uuid.UUID
	NewsDate  string // calendar day in UTC, formatted 2006-01-02
	Content   string
	CreatedAt time.Time
}
