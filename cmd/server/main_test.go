package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mockprep/interview/internal/config"
	"mockprep/interview/internal/handlers"
	"mockprep/interview/internal/llm"
	"mockprep/interview/internal/models"
	"mockprep/interview/internal/oracle"
	"mockprep/interview/internal/prompts"
	"mockprep/interview/internal/repositories"
	"mockprep/interview/internal/testhelpers"

	"go.uber.org/zap"
)

type fakeProvider struct {
	reply string
}

func (f fakeProvider) GenerateContent(_ context.Context, req *models.GenerationRequest) (*models.GenerationResponse, error) {
	return &models.GenerationResponse{Content: f.reply, RequestID: req.RequestID}, nil
}
func (fakeProvider) GetProviderName() string { return "fake" }

var _ llm.Provider = (*fakeProvider)(nil)

func newTestServer(t *testing.T, reply string) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Provider:       "gemini",
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: 5 * time.Second,
	}

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("prompt manager: %v", err)
	}

	provider := fakeProvider{reply: reply}
	repo := repositories.NewInterviewRepository(testhelpers.SetupTestDB(t))
	logger := zap.NewNop()

	interviewHandler := handlers.NewInterviewHandler(
		repo,
		oracle.NewQuestionGenerator(provider, promptManager, logger),
		oracle.NewResponseScorer(provider, promptManager, logger),
		logger,
	)
	healthHandler := handlers.NewHealthHandler(provider, promptManager, repo, cfg)

	return newRouter(cfg, interviewHandler, healthHandler)
}

func post(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouterServesHealthAndMetrics(t *testing.T) {
	handler := newTestServer(t, "")

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	handler := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/interview", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestRouterEndToEndFlow(t *testing.T) {
	handler := newTestServer(t, "1. What is Go?\n2) Why channels?\n- Explain interfaces.")

	rec := post(t, handler, "/interview", `{"name":"Alice","job_title":"SWE","job_description":"Go services"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", rec.Code)
	}
	var created models.CreateInterviewResponse
	json.Unmarshal(rec.Body.Bytes(), &created)

	rec = post(t, handler, "/generate_questions_for_interview", `{"interview_id":`+jsonNumber(created.InterviewID)+`,"num_questions":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var generated models.GenerateQuestionsResponse
	json.Unmarshal(rec.Body.Bytes(), &generated)
	if len(generated.Questions) != 3 || generated.Questions[1].QuestionText != "Why channels?" {
		t.Fatalf("unexpected questions %+v", generated.Questions)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/interview_history/"+jsonNumber(created.InterviewID), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", rec.Code)
	}
	var detail models.InterviewDetailResponse
	json.Unmarshal(rec.Body.Bytes(), &detail)
	if len(detail.Interview.Questions) != 3 {
		t.Fatalf("expected 3 questions in history, got %d", len(detail.Interview.Questions))
	}
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
