package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Signal directions.
const (
	DirectionCall    = "CALL"
	DirectionPut     = "PUT"
	DirectionNeutral = "NEUTRAL"
)

// Confidence levels for trading signals.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// TradingSignal is a persisted trading signal. Indicators holds the free-form
// technical snapshot (support/resistance, RSI, trend, volatility) as JSON.
type TradingSignal struct {
	ID             int64          `gorm:"primaryKey" json:"id"`
	Symbol         string         `gorm:"not null" json:"symbol"`
	Direction      string         `json:"direction"`
	Price          float64        `json:"price"`
	Confidence     string         `json:"confidence"`
	Timeframe      string         `json:"timeframe"`
	Strategy       string         `json:"strategy"`
	Indicators     datatypes.JSON `gorm:"type:json" json:"indicators"`
	Analysis       string         `json:"analysis"`
	ExpertAnalysis string         `json:"expert_analysis"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the TradingSignal model.
func (TradingSignal) TableName() string {
	return "trading_signals"
}
