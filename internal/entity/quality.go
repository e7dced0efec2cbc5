package entity

import (
	"database/sql"
	"time"
)

// QualityTable identifies which table a quality pass targets.
type QualityTable string

const (
	QualityTableNews      QualityTable = "news"
	QualityTableSentiment QualityTable = "sentiment"
	QualityTableSignals   QualityTable = "signals"
	QualityTableAll       QualityTable = "all"
)

// Valid reports whether t names a known quality-pass target.
func (t QualityTable) Valid() bool {
	switch t {
	case QualityTableNews, QualityTableSentiment, QualityTableSignals, QualityTableAll:
		return true
	}
	return false
}

// Quality pass lifecycle states.
const (
	QualityPassStatusRunning   = "running"
	QualityPassStatusCompleted = "completed"
	QualityPassStatusFailed    = "failed"
)

// QualitySchedule defines a cron-driven quality pass.
type QualitySchedule struct {
	ID             int64        `gorm:"primaryKey" json:"id"`
	TargetTable    QualityTable `gorm:"not null" json:"target_table"`
	CronExpression string       `gorm:"not null" json:"cron_expression"`
	ItemLimit      int          `json:"item_limit"`
	IsActive       bool         `json:"is_active"`
	NextExecution  sql.NullTime `json:"next_execution"`
	LastExecution  sql.NullTime `json:"last_execution"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the QualitySchedule model.
func (QualitySchedule) TableName() string {
	return "quality_schedules"
}

// QualityPassHistory records one execution of a quality pass.
type QualityPassHistory struct {
	ID                 int64          `gorm:"primaryKey" json:"id"`
	ScheduleID         sql.NullInt64  `json:"schedule_id"`
	TargetTable        QualityTable   `gorm:"not null" json:"target_table"`
	ItemLimit          int            `json:"item_limit"`
	DryRun             bool           `json:"dry_run"`
	Status             string         `gorm:"not null" json:"status"`
	NewsProcessed      int            `json:"news_processed"`
	SentimentProcessed int            `json:"sentiment_processed"`
	SignalsProcessed   int            `json:"signals_processed"`
	Output             sql.NullString `json:"output"`
	ErrorMessage       sql.NullString `json:"error_message"`
	StartedAt          time.Time      `json:"started_at"`
	CompletedAt        sql.NullTime   `json:"completed_at"`
}

// TableName specifies the table name for the QualityPassHistory model.
func (QualityPassHistory) TableName() string {
	return "quality_pass_history"
}
