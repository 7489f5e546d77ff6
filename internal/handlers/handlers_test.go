package handlers

import (
	"context"
	"text/template"

	"mockprep/interview/internal/models"
	"mockprep/interview/internal/oracle"
)

type mockProvider struct {
	generateContentFn func(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResponse, error)
	getProviderNameFn func() string
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResponse, error) {
	if m.generateContentFn == nil {
		return &models.GenerationResponse{}, nil
	}
	return m.generateContentFn(ctx, req)
}

func (m *mockProvider) GetProviderName() string {
	if m.getProviderNameFn == nil {
		return "mock"
	}
	return m.getProviderNameFn()
}

type mockPromptManager struct {
	buildPromptFn  func(mode, variant string, data interface{}) (string, error)
	getTemplatesFn func() map[string]map[string]*template.Template
}

func (m *mockPromptManager) BuildPrompt(mode, variant string, data interface{}) (string, error) {
	if m.buildPromptFn == nil {
		return "mock prompt", nil
	}
	return m.buildPromptFn(mode, variant, data)
}

func (m *mockPromptManager) SystemInstruction(string) string {
	return "mock instruction"
}

func (m *mockPromptManager) GetTemplates() map[string]map[string]*template.Template {
	if m.getTemplatesFn == nil {
		return map[string]map[string]*template.Template{
			models.PromptModeQuestions: {
				models.DefaultPromptVariant: template.Must(template.New("test").Parse("test")),
			},
		}
	}
	return m.getTemplatesFn()
}

type mockGenerator struct {
	calls int
	fn    func(ctx context.Context, input oracle.QuestionInput) ([]string, error)
}

func (m *mockGenerator) GenerateQuestions(ctx context.Context, input oracle.QuestionInput) ([]string, error) {
	m.calls++
	if m.fn == nil {
		return []string{"What is Go?", "Why channels?", "Explain interfaces."}, nil
	}
	return m.fn(ctx, input)
}

type mockScorer struct {
	calls int
	fn    func(ctx context.Context, input oracle.ScoreInput) (*oracle.ScoreResult, error)
}

func (m *mockScorer) Score(ctx context.Context, input oracle.ScoreInput) (*oracle.ScoreResult, error) {
	m.calls++
	if m.fn == nil {
		score := 7.5
		return &oracle.ScoreResult{Score: &score, Reasoning: "Score: 7.5/10 Good communication."}, nil
	}
	return m.fn(ctx, input)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}
