// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Vision        VisionConfig        `yaml:"vision"`
	Engine        EngineConfig        `yaml:"engine"`
	Refresh       RefreshConfig       `yaml:"refresh"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	AppID        string          `yaml:"app_id"`
	CertID       string          `yaml:"cert_id"`
	TokenURL     string          `yaml:"token_url"`
	SalesURL     string          `yaml:"sales_url"`
	Marketplace  string          `yaml:"marketplace"`
	LookbackDays int             `yaml:"lookback_days"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// VisionConfig defines vision backend settings.
type VisionConfig struct {
	Backend   string          `yaml:"backend"` // anthropic, gemini
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Gemini    GeminiConfig    `yaml:"gemini"`
}

// AnthropicConfig defines Anthropic API settings. The API key comes from the
// ANTHROPIC_API_KEY environment variable.
type AnthropicConfig struct {
	Model string `yaml:"model"`
}

// GeminiConfig defines Gemini API settings. The API key comes from the
// GEMINI_API_KEY environment variable.
type GeminiConfig struct {
	Model string `yaml:"model"`
}

// RefreshConfig defines market refresh behavior.
type RefreshConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Interval       time.Duration `yaml:"interval"`
	StaleAfter     time.Duration `yaml:"stale_after"`
	BatchSize      int           `yaml:"batch_size"`
	AlertThreshold float64       `yaml:"alert_threshold"` // percent move before notifying
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyVisionDefaults(&cfg.Vision)
	applyRefreshDefaults(&cfg.Refresh)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.SalesURL == "" {
		e.SalesURL = "https://api.ebay.com/buy/marketplace_insights/v1_beta/item_sales/search"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.LookbackDays == 0 {
		e.LookbackDays = 90
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyVisionDefaults(v *VisionConfig) {
	if v.Backend == "" {
		v.Backend = "anthropic"
	}
}

func applyRefreshDefaults(r *RefreshConfig) {
	if r.Interval == 0 {
		r.Interval = 6 * time.Hour
	}
	if r.StaleAfter == 0 {
		r.StaleAfter = 24 * time.Hour
	}
	if r.BatchSize == 0 {
		r.BatchSize = 20
	}
	if r.AlertThreshold == 0 {
		r.AlertThreshold = 10.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Ebay.AppID == "" {
		errs = append(errs, fmt.Errorf("ebay.app_id is required"))
	}
	if cfg.Ebay.CertID == "" {
		errs = append(errs, fmt.Errorf("ebay.cert_id is required"))
	}

	switch cfg.Vision.Backend {
	case "anthropic", "gemini":
		// API keys come from env at startup.
	default:
		errs = append(
			errs,
			fmt.Errorf("vision.backend must be one of: anthropic, gemini (got %q)", cfg.Vision.Backend),
		)
	}

	errs = append(errs, validateEngine(&cfg.Engine)...)

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	return errors.Join(errs...)
}
