// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Static errors for configuration validation.
var (
	// ErrInvalidPort is returned when PORT is outside 1-65535.
	ErrInvalidPort = errors.New("config: PORT must be between 1 and 65535")
	// ErrInvalidSubmitRate is returned when SUBMIT_RATE or SUBMIT_BURST is not positive.
	ErrInvalidSubmitRate = errors.New("config: SUBMIT_RATE and SUBMIT_BURST must be positive")
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Port           int      `env:"PORT, default=8080" json:"port"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=*" json:"allowed_origins"`

	// Submission settings
	SubmitDelay time.Duration `env:"SUBMIT_DELAY, default=1500ms" json:"submit_delay"`
	SubmitRate  float64       `env:"SUBMIT_RATE, default=5" json:"submit_rate"` // submissions per second per client
	SubmitBurst int           `env:"SUBMIT_BURST, default=10" json:"submit_burst"`

	// Catalog settings
	CatalogPath    string `env:"CATALOG_PATH" json:"catalog_path,omitempty"` // empty uses the compiled-in seed
	CatalogRefresh string `env:"CATALOG_REFRESH" json:"catalog_refresh,omitempty"`

	// Optional S3 catalog source
	CatalogS3Bucket    string `env:"CATALOG_S3_BUCKET" json:"catalog_s3_bucket,omitempty"`
	CatalogS3Key       string `env:"CATALOG_S3_KEY, default=catalog.yaml" json:"catalog_s3_key"`
	CatalogS3Region    string `env:"CATALOG_S3_REGION" json:"catalog_s3_region,omitempty"`
	CatalogS3Endpoint  string `env:"CATALOG_S3_ENDPOINT" json:"catalog_s3_endpoint,omitempty"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" json:"-"`     // Masked in JSON
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" json:"-"` // Masked in JSON

	// Logging settings
	LogFormat string `env:"LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// S3Enabled returns true if the catalog is read from S3.
func (c *Config) S3Enabled() bool {
	return c.CatalogS3Bucket != "" && c.CatalogS3Region != ""
}

// RefreshEnabled returns true if the catalog is reloaded on a schedule.
func (c *Config) RefreshEnabled() bool {
	return strings.TrimSpace(c.CatalogRefresh) != ""
}

// Load reads configuration from environment variables using go-envconfig
// and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.SubmitRate <= 0 || c.SubmitBurst < 1 {
		return ErrInvalidSubmitRate
	}
	return nil
}

// NewLogger creates a structured logger based on the configuration.
// When LogFormat is "json", it outputs JSON logs suitable for production.
// Otherwise, it outputs human-readable text logs.
func (c *Config) NewLogger() *slog.Logger {
	level := parseLogLevel(c.LogLevel)

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// String returns a string representation of the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Port: %d, SubmitDelay: %s, SubmitRate: %g, SubmitBurst: %d, CatalogPath: %s, CatalogRefresh: %s, CatalogS3Bucket: %s, CatalogS3Key: %s, CatalogS3Region: %s, LogFormat: %s, LogLevel: %s}",
		c.Port,
		c.SubmitDelay,
		c.SubmitRate,
		c.SubmitBurst,
		c.CatalogPath,
		c.CatalogRefresh,
		c.CatalogS3Bucket,
		c.CatalogS3Key,
		c.CatalogS3Region,
		c.LogFormat,
		c.LogLevel,
	)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
