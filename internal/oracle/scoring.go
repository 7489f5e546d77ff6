package oracle

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mockprep/interview/internal/llm"
	"mockprep/interview/internal/metrics"
	"mockprep/interview/internal/models"
	"mockprep/interview/internal/prompts"
)

// first number in the reply, optionally followed by a "/10"-style qualifier
var scorePattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*(?:/\s*10|out of 10|points|score)?`)

type ScoreInput struct {
	RequestID string
	JobTitle  string
	Question  string
	Response  string
}

// ScoreResult carries the parsed score, nil when the reply had no number,
// and the full trimmed reply as reasoning.
type ScoreResult struct {
	Score     *float64
	Reasoning string
}

type ResponseScorer struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewResponseScorer(provider llm.Provider, promptProvider prompts.PromptProvider, logger *zap.Logger) *ResponseScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseScorer{
		provider: provider,
		prompts:  promptProvider,
		logger:   logger,
	}
}

func (s *ResponseScorer) Score(ctx context.Context, input ScoreInput) (*ScoreResult, error) {
	prompt, err := s.prompts.BuildPrompt(models.PromptModeScore, models.DefaultPromptVariant, prompts.ScorePromptData{
		JobTitle: input.JobTitle,
		Question: input.Question,
		Response: input.Response,
	})
	if err != nil {
		return nil, fmt.Errorf("build score prompt: %w", err)
	}

	start := time.Now()
	resp, err := s.provider.GenerateContent(ctx, &models.GenerationRequest{
		RequestID:         input.RequestID,
		SystemInstruction: s.prompts.SystemInstruction(models.PromptModeScore),
		Prompt:            prompt,
	})
	metrics.ObserveOracleCall(operationScoreResponse, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	reasoning := strings.TrimSpace(resp.Content)
	score := ExtractScore(reasoning)
	if score == nil {
		metrics.IncUnparsedScore()
		s.logger.Warn("no numeric score in oracle reply", zap.String("request_id", input.RequestID))
	}

	return &ScoreResult{Score: score, Reasoning: reasoning}, nil
}

// ExtractScore returns the first number found in text, or nil.
func ExtractScore(text string) *float64 {
	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &value
}
