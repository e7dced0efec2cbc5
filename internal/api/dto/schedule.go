package dto

import (
	"database/sql"
	"time"
)

// CreateScheduleRequest defines the DTO for creating a new quality schedule.
type CreateScheduleRequest struct {
	TargetTable    string `json:"target_table"`
	CronExpression string `json:"cron_expression"`
	ItemLimit      int    `json:"item_limit"`
	IsActive       bool   `json:"is_active"`
}

// UpdateScheduleRequest defines the DTO for updating an existing quality schedule.
type UpdateScheduleRequest struct {
	TargetTable    string `json:"target_table"`
	CronExpression string `json:"cron_expression"`
	ItemLimit      int    `json:"item_limit"`
	IsActive       bool   `json:"is_active"`
}

// ScheduleResponse is the DTO for API responses containing schedule details.
type ScheduleResponse struct {
	ID             int64        `json:"id"`
	TargetTable    string       `json:"target_table"`
	CronExpression string       `json:"cron_expression"`
	ItemLimit      int          `json:"item_limit"`
	IsActive       bool         `json:"is_active"`
	NextExecution  sql.NullTime `json:"next_execution" swaggertype:"string" format:"date-time"`
	LastExecution  sql.NullTime `json:"last_execution" swaggertype:"string" format:"date-time"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
