package dto

import (
	"time"
)

// TriggerPassRequest defines the DTO for triggering a quality pass.
type TriggerPassRequest struct {
	Table  string `json:"table"`
	Limit  int    `json:"limit"`
	DryRun bool   `json:"dry_run"`
	Wait   bool   `json:"wait"`
}

// PassHistoryResponse is the DTO for API responses containing quality pass details.
type PassHistoryResponse struct {
	ID                 int64      `json:"id"`
	ScheduleID         *int64     `json:"schedule_id,omitempty"`
	TargetTable        string     `json:"target_table"`
	ItemLimit          int        `json:"item_limit"`
	DryRun             bool       `json:"dry_run"`
	Status             string     `json:"status"`
	NewsProcessed      int        `json:"news_processed"`
	SentimentProcessed int        `json:"sentiment_processed"`
	SignalsProcessed   int        `json:"signals_processed"`
	Output             string     `json:"output,omitempty"`
	ErrorMessage       string     `json:"error_message,omitempty"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	Duration           int64      `json:"duration_ms"`
}
