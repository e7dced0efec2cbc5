package config

import (
	"time"

	"golang-news-curator/pkg/config"
)

// Pass holds configuration for synchronous quality pass triggers.
type Pass struct {
	WaitTimeout  time.Duration `mapstructure:"wait_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

func (p *Pass) applyDefaults() {
	if p.WaitTimeout <= 0 {
		p.WaitTimeout = 45 * time.Second
	}
	if p.PollInterval <= 0 {
		p.PollInterval = time.Second
	}
}

// Scheduler holds configuration for the cron schedule poller.
type Scheduler struct {
	PollingInterval time.Duration `mapstructure:"polling_interval"`
}

func (s *Scheduler) applyDefaults() {
	if s.PollingInterval <= 0 {
		s.PollingInterval = 30 * time.Second
	}
}

// Config holds the full configuration for the API service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	News      config.News     `mapstructure:"news"`
	Pass      Pass            `mapstructure:"pass"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
}

// Load loads the API service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.Pass.applyDefaults()
	cfg.Scheduler.applyDefaults()
	return &cfg, nil
}
