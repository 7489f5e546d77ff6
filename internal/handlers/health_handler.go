package handlers

import (
	"context"
	"net/http"
	"time"

	"mockprep/interview/internal/config"
	"mockprep/interview/internal/llm"
	"mockprep/interview/internal/prompts"
	"mockprep/interview/internal/utils"
)

const (
	serviceName = "interview"
	pingTimeout = 2 * time.Second
	checkOK     = "ok"
	checkFailed = "failed"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

type HealthHandler struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	database      Pinger
	config        *config.Config
}

func NewHealthHandler(provider llm.Provider, promptManager prompts.PromptProvider, database Pinger, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		provider:      provider,
		promptManager: promptManager,
		database:      database,
		config:        cfg,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]ReadinessCheck{
		"provider":       handler.checkProvider(),
		"prompt_manager": handler.checkPrompts(),
		"database":       handler.checkDatabase(request.Context()),
		"configuration":  handler.checkConfig(),
	}

	response := ReadinessResponse{
		Status:  "ready",
		Service: serviceName,
		Checks:  checks,
	}
	for _, check := range checks {
		if check.Status != checkOK {
			response.Status = "not_ready"
			utils.JSON(writer, http.StatusServiceUnavailable, response)
			return
		}
	}

	utils.JSON(writer, http.StatusOK, response)
}

func (handler *HealthHandler) checkProvider() ReadinessCheck {
	if handler.provider == nil {
		return ReadinessCheck{Status: checkFailed, Message: "AI provider not initialized"}
	}
	return ReadinessCheck{Status: checkOK}
}

func (handler *HealthHandler) checkPrompts() ReadinessCheck {
	if handler.promptManager == nil {
		return ReadinessCheck{Status: checkFailed, Message: "Prompt manager not initialized"}
	}
	if len(handler.promptManager.GetTemplates()) == 0 {
		return ReadinessCheck{Status: checkFailed, Message: "No prompt templates loaded"}
	}
	return ReadinessCheck{Status: checkOK}
}

func (handler *HealthHandler) checkDatabase(ctx context.Context) ReadinessCheck {
	if handler.database == nil {
		return ReadinessCheck{Status: checkFailed, Message: "Database not initialized"}
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := handler.database.Ping(ctx); err != nil {
		return ReadinessCheck{Status: checkFailed, Message: err.Error()}
	}
	return ReadinessCheck{Status: checkOK}
}

func (handler *HealthHandler) checkConfig() ReadinessCheck {
	if handler.config == nil {
		return ReadinessCheck{Status: checkFailed, Message: "Configuration not loaded"}
	}
	return ReadinessCheck{Status: checkOK}
}
