package entity

import "time"

// Overall market direction labels.
const (
	OverallBullish = "Bullish"
	OverallBearish = "Bearish"
	OverallNeutral = "Neutral"
)

// Sentiment labels derived from the overall direction.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// MarketSentiment is one market-sentiment snapshot, conceptually one per
// calendar day. Score and SentimentDate are pointers so the auditor can tell
// NULL from zero values.
type MarketSentiment struct {
	ID                  int64      `gorm:"primaryKey" json:"id"`
	Date                time.Time  `gorm:"type:date" json:"date"`
	Overall             string     `json:"overall"`
	VIX                 string     `gorm:"column:vix" json:"vix"`
	SP500Trend          string     `gorm:"column:sp500_trend" json:"sp500_trend"`
	TechnicalIndicators string     `json:"technical_indicators"`
	Volume              string     `json:"volume"`
	Notes               string     `json:"notes"`
	Analysis            string     `json:"analysis"`
	Symbol              string     `json:"symbol"`
	Sentiment           string     `json:"sentiment"`
	Score               *float64   `json:"score,omitempty"`
	Source              string     `json:"source"`
	SentimentDate       *time.Time `json:"sentiment_date,omitempty"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the MarketSentiment model.
func (MarketSentiment) TableName() string {
	return "market_sentiment"
}
