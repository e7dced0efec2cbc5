package entity

import "time"

// SymbolReview marks a news row whose instrument assignment needs a human;
// rows carrying it are exempt from automatic symbol guessing.
const SymbolReview = "REVIEW"

// Impact levels for market news.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// MarketNews represents a persisted market news article. Rows are append-only;
// remediation only rewrites title, url and summary.
type MarketNews struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Summary   string     `json:"summary"`
	Source    string     `json:"source"`
	URL       string     `gorm:"column:url" json:"url"`
	NewsDate  *time.Time `json:"news_date,omitempty"`
	Impact    string     `json:"impact"`
	Symbol    string     `json:"symbol"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the MarketNews model.
func (MarketNews) TableName() string {
	return "market_news"
}
