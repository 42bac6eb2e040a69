package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port        string `envconfig:"PORT" default:"8080"`
		Debug       bool   `envconfig:"DEBUG" default:"false"`
		LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
		FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	}
	DB struct {
		Driver   string `envconfig:"DB_DRIVER" default:"postgres"`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     string `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:"postgres"`
		DBName   string `envconfig:"DB_NAME" default:"medbot"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
		Path     string `envconfig:"DB_PATH" default:"./data/medbot.db"`
	}
	Redis struct {
		Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
		Host     string `envconfig:"REDIS_HOST" default:"localhost"`
		Port     string `envconfig:"REDIS_PORT" default:"6379"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}
	FDA struct {
		BaseURL       string        `envconfig:"FDA_BASE_URL" default:"https://api.fda.gov"`
		APIKey        string        `envconfig:"FDA_API_KEY"`
		UserAgent     string        `envconfig:"FDA_USER_AGENT" default:"MedBot/1.0"`
		Timeout       time.Duration `envconfig:"FDA_TIMEOUT" default:"15s"`
		DrugLimit     int           `envconfig:"FDA_DRUG_LIMIT" default:"10"`
		RecallLimit   int           `envconfig:"FDA_RECALL_LIMIT" default:"20"`
		RecentRecalls int           `envconfig:"FDA_RECENT_RECALLS" default:"10"`
		RatePerSecond float64       `envconfig:"FDA_RATE_PER_SECOND" default:"4"`
		Burst         int           `envconfig:"FDA_BURST" default:"4"`
	}
	Cache struct {
		TTLHours   int           `envconfig:"CACHE_TTL_HOURS" default:"24"`
		PurgeAfter time.Duration `envconfig:"CACHE_PURGE_AFTER" default:"168h"`
		HotTTL     time.Duration `envconfig:"CACHE_HOT_TTL" default:"10m"`
	}
	Workers struct {
		SweepEnabled  bool          `envconfig:"WORKER_SWEEP_ENABLED" default:"true"`
		SweepInterval time.Duration `envconfig:"WORKER_SWEEP_INTERVAL" default:"1h"`
	}
	RateLimit struct {
		RequestsPerSecond int `envconfig:"RATE_LIMIT_RPS" default:"10"`
		Burst             int `envconfig:"RATE_LIMIT_BURST" default:"20"`
	}
}

const defaultCacheTTL = 24 * time.Hour

// Load reads the process environment. Every key is unprefixed; nested
// structs only group fields.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CacheTTL is the record freshness window.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTLHours <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(c.Cache.TTLHours) * time.Hour
}
