package dto

import (
	"golang-news-curator/internal/news"
)

// EnrichedNewsResponse is the DTO for API responses containing curated news.
type EnrichedNewsResponse struct {
	Symbol      string      `json:"symbol"`
	CompanyName string      `json:"company_name,omitempty"`
	Count       int         `json:"count"`
	Items       []news.Item `json:"items"`
}
