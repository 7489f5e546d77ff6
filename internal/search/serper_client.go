package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://google.serper.dev/search"
	defaultTimeout  = 15 * time.Second
)

// SerperClient queries the Serper web search API for interview question snippets.
type SerperClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

type serperRequest struct {
	Query string `json:"q"`
}

type serperResponse struct {
	Organic []organicResult `json:"organic"`
}

type organicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

func NewSerperClient(apiKey, endpoint string, logger *zap.Logger) *SerperClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SerperClient{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

func Query(companyName, jobTitle string) string {
	return strings.TrimSpace(fmt.Sprintf("interview questions for %s role %s", jobTitle, companyName))
}

// SearchQuestions returns each organic result's snippet, or its title when the
// snippet is empty. Failures are logged and yield an empty slice.
func (c *SerperClient) SearchQuestions(ctx context.Context, companyName, jobTitle string) []string {
	results, err := c.search(ctx, Query(companyName, jobTitle))
	if err != nil {
		c.logger.Warn("serper search failed",
			zap.String("company", companyName),
			zap.String("job_title", jobTitle),
			zap.Error(err),
		)
		return []string{}
	}

	snippets := make([]string, 0, len(results))
	for _, item := range results {
		switch {
		case item.Snippet != "":
			snippets = append(snippets, item.Snippet)
		case item.Title != "":
			snippets = append(snippets, item.Title)
		}
	}
	return snippets
}

func (c *SerperClient) search(ctx context.Context, query string) ([]organicResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("SERPER_API_KEY is not set")
	}

	payload, err := json.Marshal(serperRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper api error: %s", resp.Status)
	}

	var decoded serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return decoded.Organic, nil
}
