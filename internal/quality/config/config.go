package config

import (
	"golang-news-curator/pkg/config"
	"time"
)

// Quality holds quality-pass specific configuration.
type Quality struct {
	PauseBetweenItems       time.Duration `mapstructure:"pause_between_items"`
	MinSummaryLength        int           `mapstructure:"min_summary_length"`
	MinAnalysisLength       int           `mapstructure:"min_analysis_length"`
	MinExpertAnalysisLength int           `mapstructure:"min_expert_analysis_length"`
	TargetLanguage          string        `mapstructure:"target_language"`
	StreamTaskTimeout       time.Duration `mapstructure:"stream_task_timeout"`
}

func (q *Quality) applyDefaults() {
	if q.PauseBetweenItems <= 0 {
		q.PauseBetweenItems = time.Second
	}
	if q.MinSummaryLength <= 0 {
		q.MinSummaryLength = 30
	}
	if q.MinAnalysisLength <= 0 {
		q.MinAnalysisLength = 50
	}
	if q.MinExpertAnalysisLength <= 0 {
		q.MinExpertAnalysisLength = 100
	}
	if q.TargetLanguage == "" {
		q.TargetLanguage = "Spanish"
	}
	if q.StreamTaskTimeout <= 0 {
		q.StreamTaskTimeout = 10 * time.Minute
	}
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// AI holds configuration for AI providers.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the quality service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	News     config.News     `mapstructure:"news"`
	Quality  Quality         `mapstructure:"quality"`
	AI       AI              `mapstructure:"ai"`
	OpenAI   OpenAI          `mapstructure:"openai"`
	Gemini   Gemini          `mapstructure:"gemini"`
	Telegram Telegram        `mapstructure:"telegram"`
}

// Load loads the quality service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.Quality.applyDefaults()
	return &cfg, nil
}
