package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Scan      ScanConfig
	Clipboard ClipboardConfig
	Dialer    DialerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Verbose reports whether every scan should be logged.
func (l *LogConfig) Verbose() bool {
	return strings.EqualFold(l.Level, "debug")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScanConfig holds settings for scanning and post-scan actions.
type ScanConfig struct {
	USSDCode         string `mapstructure:"ussd_code"`
	DialEnabled      bool   `mapstructure:"dial_enabled"`
	ClipboardLabel   string `mapstructure:"clipboard_label"`
	MaxImageSizeMB   int64  `mapstructure:"max_image_size_mb"`
	BatchConcurrency int    `mapstructure:"batch_concurrency"`
	BatchMaxItems    int    `mapstructure:"batch_max_items"`
}

// MaxImageBytes returns the image size limit in bytes.
func (s *ScanConfig) MaxImageBytes() int64 {
	return s.MaxImageSizeMB * 1024 * 1024
}

// ClipboardConfig selects the clipboard sink.
type ClipboardConfig struct {
	Provider string `mapstructure:"provider"`
}

// DialerConfig selects the dialer.
type DialerConfig struct {
	Provider string `mapstructure:"provider"`
}

var (
	clipboardProviders = map[string]bool{"noop": true, "system": true}
	dialerProviders    = map[string]bool{"noop": true}
)

// Validate checks limits and provider names.
func (c *Config) Validate() error {
	if c.Scan.MaxImageSizeMB <= 0 {
		return fmt.Errorf("scan.max_image_size_mb must be positive, got %d", c.Scan.MaxImageSizeMB)
	}
	if c.Scan.BatchConcurrency <= 0 {
		return fmt.Errorf("scan.batch_concurrency must be positive, got %d", c.Scan.BatchConcurrency)
	}
	if c.Scan.BatchMaxItems <= 0 {
		return fmt.Errorf("scan.batch_max_items must be positive, got %d", c.Scan.BatchMaxItems)
	}
	if c.Scan.DialEnabled && c.Scan.USSDCode == "" {
		return fmt.Errorf("scan.ussd_code is required when dialing is enabled")
	}
	if !clipboardProviders[c.Clipboard.Provider] {
		return fmt.Errorf("unknown clipboard provider: %s", c.Clipboard.Provider)
	}
	if !dialerProviders[c.Dialer.Provider] {
		return fmt.Errorf("unknown dialer provider: %s", c.Dialer.Provider)
	}
	return nil
}

// Load reads configuration from environment variables with the UPISCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("UPISCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Scan defaults
	v.SetDefault("scan.ussd_code", "*99*1*3#")
	v.SetDefault("scan.dial_enabled", true)
	v.SetDefault("scan.clipboard_label", "UPI Id")
	v.SetDefault("scan.max_image_size_mb", 10)
	v.SetDefault("scan.batch_concurrency", 8)
	v.SetDefault("scan.batch_max_items", 500)

	v.SetDefault("clipboard.provider", "noop")
	v.SetDefault("dialer.provider", "noop")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "UPISCAN_SERVER_PORT",
		"server.read_timeout":    "UPISCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "UPISCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":     "UPISCAN_SERVER_ENVIRONMENT",
		"log.level":              "UPISCAN_LOG_LEVEL",
		"cors.allowed_origins":   "UPISCAN_CORS_ALLOWED_ORIGINS",
		"scan.ussd_code":         "UPISCAN_SCAN_USSD_CODE",
		"scan.dial_enabled":      "UPISCAN_SCAN_DIAL_ENABLED",
		"scan.clipboard_label":   "UPISCAN_SCAN_CLIPBOARD_LABEL",
		"scan.max_image_size_mb": "UPISCAN_SCAN_MAX_IMAGE_SIZE_MB",
		"scan.batch_concurrency": "UPISCAN_SCAN_BATCH_CONCURRENCY",
		"scan.batch_max_items":   "UPISCAN_SCAN_BATCH_MAX_ITEMS",
		"clipboard.provider":     "UPISCAN_CLIPBOARD_PROVIDER",
		"dialer.provider":        "UPISCAN_DIALER_PROVIDER",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if UPISCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("UPISCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Scan = ScanConfig{
		USSDCode:         v.GetString("scan.ussd_code"),
		DialEnabled:      v.GetBool("scan.dial_enabled"),
		ClipboardLabel:   v.GetString("scan.clipboard_label"),
		MaxImageSizeMB:   v.GetInt64("scan.max_image_size_mb"),
		BatchConcurrency: v.GetInt("scan.batch_concurrency"),
		BatchMaxItems:    v.GetInt("scan.batch_max_items"),
	}
	cfg.Clipboard = ClipboardConfig{
		Provider: v.GetString("clipboard.provider"),
	}
	cfg.Dialer = DialerConfig{
		Provider: v.GetString("dialer.provider"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
