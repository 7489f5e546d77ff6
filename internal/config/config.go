package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// app config, resolved from the environment (optionally seeded by .env)
type Config struct {
	Port           string
	Provider       string
	Gemini         GeminiConfig
	Database       DatabaseConfig
	Search         SearchConfig
	AllowedOrigins []string
	RequestTimeout time.Duration

	// cron expression for the scheduled history purge, empty disables it
	HistoryPurgeSchedule string
	HistoryExportDir     string

	LogJSON  bool
	LogDebug bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type DatabaseConfig struct {
	Driver string // "sqlite" | "postgres"
	DSN    string
}

type SearchConfig struct {
	APIKey   string
	Endpoint string
}

var defaults = map[string]interface{}{
	"port":                   "8000",
	"ai_provider":            "gemini",
	"gemini_model":           "gemini-2.5-flash",
	"db_driver":              "sqlite",
	"db_dsn":                 "interview.db",
	"serper_endpoint":        "https://google.serper.dev/search",
	"cors_allowed_origins":   "http://localhost:3000",
	"request_timeout":        "60s",
	"history_purge_schedule": "",
	"history_export_dir":     "",
	"log_json":               false,
	"log_debug":              false,
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	config := &Config{
		Port:     v.GetString("port"),
		Provider: strings.ToLower(v.GetString("ai_provider")),
		Gemini: GeminiConfig{
			APIKey: strings.TrimSpace(v.GetString("gemini_api_key")),
			Model:  v.GetString("gemini_model"),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("db_driver")),
			DSN:    v.GetString("db_dsn"),
		},
		Search: SearchConfig{
			APIKey:   strings.TrimSpace(v.GetString("serper_api_key")),
			Endpoint: v.GetString("serper_endpoint"),
		},
		AllowedOrigins:       splitList(v.GetString("cors_allowed_origins")),
		RequestTimeout:       timeout,
		HistoryPurgeSchedule: strings.TrimSpace(v.GetString("history_purge_schedule")),
		HistoryExportDir:     strings.TrimSpace(v.GetString("history_export_dir")),
		LogJSON:              v.GetBool("log_json"),
		LogDebug:             v.GetBool("log_debug"),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	// the API key is checked by the gemini provider factory
	switch config.Database.Driver {
	case "sqlite", "postgres":
	default:
		return errors.New("unsupported DB_DRIVER: " + config.Database.Driver + ". Supported: sqlite, postgres")
	}
	if config.Database.DSN == "" {
		return errors.New("DB_DSN must not be empty")
	}
	if config.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
