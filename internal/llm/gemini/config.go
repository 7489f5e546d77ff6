package gemini

import (
	"errors"
	"strings"

	"mockprep/interview/internal/config"
)

const defaultModel = "gemini-2.5-flash"

// holds Gemini-specific configuration
type Config struct {
	APIKey string
	Model  string
}

func NewConfig(cfg *config.Config) (*Config, error) {
	apiKey := strings.TrimSpace(cfg.Gemini.APIKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is required")
	}

	model := strings.TrimSpace(cfg.Gemini.Model)
	if model == "" {
		model = defaultModel
	}

	return &Config{
		APIKey: apiKey,
		Model:  model,
	}, nil
}
