package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"mockprep/interview/internal/llm"
	"mockprep/interview/internal/metrics"
	"mockprep/interview/internal/models"
	"mockprep/interview/internal/prompts"
	"mockprep/interview/internal/utils"
)

const (
	operationGenerateQuestions = "generate_questions"
	operationScoreResponse     = "score_response"

	// enumeration and bullet markers removed from the start of each question line
	questionMarkerCutset = "0123456789.)(-*•: \t"
)

// QuestionInput describes the role questions are generated for.
type QuestionInput struct {
	RequestID      string
	JobTitle       string
	JobDescription string
	CompanyName    *string
	NumQuestions   int
}

// QuestionGenerator asks the provider for tailored interview questions.
type QuestionGenerator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewQuestionGenerator(provider llm.Provider, promptProvider prompts.PromptProvider, logger *zap.Logger) *QuestionGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionGenerator{
		provider: provider,
		prompts:  promptProvider,
		logger:   logger,
	}
}

// GenerateQuestions returns the cleaned question lines of a single oracle reply.
// The count is passed to the prompt only; the reply is neither padded nor truncated.
func (g *QuestionGenerator) GenerateQuestions(ctx context.Context, input QuestionInput) ([]string, error) {
	prompt, err := g.prompts.BuildPrompt(models.PromptModeQuestions, models.DefaultPromptVariant, prompts.QuestionPromptData{
		JobTitle:       input.JobTitle,
		JobDescription: input.JobDescription,
		CompanyName:    utils.OptionalString(input.CompanyName),
		NumQuestions:   input.NumQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("build questions prompt: %w", err)
	}

	start := time.Now()
	resp, err := g.provider.GenerateContent(ctx, &models.GenerationRequest{
		RequestID:         input.RequestID,
		SystemInstruction: g.prompts.SystemInstruction(models.PromptModeQuestions),
		Prompt:            prompt,
	})
	metrics.ObserveOracleCall(operationGenerateQuestions, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	questions := ParseQuestions(resp.Content)
	g.logger.Debug("questions generated",
		zap.String("request_id", input.RequestID),
		zap.Int("requested", input.NumQuestions),
		zap.Int("received", len(questions)),
		zap.String("reply", utils.TruncateForLog(resp.Content, 200)),
	)

	return questions, nil
}

// ParseQuestions splits an oracle reply into one question per non-blank line.
func ParseQuestions(text string) []string {
	lines := strings.Split(utils.StripFences(text), "\n")
	questions := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), questionMarkerCutset))
		if cleaned == "" {
			continue
		}
		questions = append(questions, cleaned)
	}
	return questions
}
