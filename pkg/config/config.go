package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Database holds MySQL database configuration.
type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	Charset         string `mapstructure:"charset"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

// Redis holds Redis configuration.
type Redis struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	StreamMaxLen int64  `mapstructure:"stream_max_len"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// News holds configuration for the news acquisition chain. Base URLs are
// overridable so tests can point the source adapters at local servers.
type News struct {
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	MaxItems             int           `mapstructure:"max_items"`
	SourceOrder          []string      `mapstructure:"source_order"`
	YahooAPIBaseURL      string        `mapstructure:"yahoo_api_base_url"`
	YahooPageBaseURL     string        `mapstructure:"yahoo_page_base_url"`
	DuckDuckGoBaseURL    string        `mapstructure:"duckduckgo_base_url"`
	GoogleFinanceBaseURL string        `mapstructure:"google_finance_base_url"`
	MarketWatchBaseURL   string        `mapstructure:"marketwatch_base_url"`
	GoogleNewsRSSBaseURL string        `mapstructure:"google_news_rss_base_url"`
}

// Load loads configuration from a file into the given config struct.
func Load(path string, config interface{}) error {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Failed to read config file, falling back to environment variables")
	}

	return viper.Unmarshal(config)
}
