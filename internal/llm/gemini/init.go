package gemini

import (
	"context"

	"mockprep/interview/internal/config"
	"mockprep/interview/internal/llm"
)

// Register Gemini provider on package import
func init() {
	llm.RegisterProvider("gemini", func(cfg *config.Config) (llm.Provider, error) {
		geminiConfig, err := NewConfig(cfg)
		if err != nil {
			return nil, err
		}
		client, err := NewClient(context.Background(), geminiConfig)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}
