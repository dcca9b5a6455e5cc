package dto

import (
	"time"

	"github.com/google/uuid"
)

type CompanyNewsItem struct {
	Id        uuid.UUID `json:"id"`
	NewsDate  string    `json:"news_date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsRunSummaryResponse struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Succeeded int    `json:"succeeded"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}
