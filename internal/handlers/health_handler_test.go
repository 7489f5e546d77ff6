package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"text/template"

	"mockprep/interview/internal/config"
)

// ============================================================================
// Test Helpers
// ============================================================================

func decodeReadinessResponse(t *testing.T, rec *httptest.ResponseRecorder) ReadinessResponse {
	t.Helper()
	var response ReadinessResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return response
}

func healthyHandler() *HealthHandler {
	return NewHealthHandler(&mockProvider{}, &mockPromptManager{}, &mockPinger{}, &config.Config{Provider: "gemini"})
}

// ============================================================================
// HealthzHandler Tests
// ============================================================================

func TestHealthzHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	healthyHandler().HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "interview" {
		t.Fatalf("unexpected body %v", body)
	}
}

// ============================================================================
// ReadyzHandler Tests
// ============================================================================

func TestReadyzHandler_AllHealthy(t *testing.T) {
	rec := httptest.NewRecorder()
	healthyHandler().ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	response := decodeReadinessResponse(t, rec)
	if response.Status != "ready" {
		t.Fatalf("expected ready, got %s", response.Status)
	}
	for _, name := range []string{"provider", "prompt_manager", "database", "configuration"} {
		if response.Checks[name].Status != "ok" {
			t.Fatalf("expected check %s to pass, got %+v", name, response.Checks[name])
		}
	}
}

func TestReadyzHandler_DatabaseDown(t *testing.T) {
	handler := NewHealthHandler(&mockProvider{}, &mockPromptManager{}, &mockPinger{err: errors.New("connection refused")}, &config.Config{})

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	response := decodeReadinessResponse(t, rec)
	if response.Status != "not_ready" {
		t.Fatalf("expected not_ready, got %s", response.Status)
	}
	if check := response.Checks["database"]; check.Status != "failed" || check.Message != "connection refused" {
		t.Fatalf("unexpected database check %+v", check)
	}
}

func TestReadyzHandler_MissingDependencies(t *testing.T) {
	handler := NewHealthHandler(nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	response := decodeReadinessResponse(t, rec)
	for _, name := range []string{"provider", "prompt_manager", "database", "configuration"} {
		if response.Checks[name].Status != "failed" {
			t.Fatalf("expected check %s to fail", name)
		}
	}
}

func TestReadyzHandler_NoTemplates(t *testing.T) {
	promptMgr := &mockPromptManager{
		getTemplatesFn: func() map[string]map[string]*template.Template { return nil },
	}
	handler := NewHealthHandler(&mockProvider{}, promptMgr, &mockPinger{}, &config.Config{})

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	if msg := decodeReadinessResponse(t, rec).Checks["prompt_manager"].Message; msg != "No prompt templates loaded" {
		t.Fatalf("unexpected message %q", msg)
	}
}
