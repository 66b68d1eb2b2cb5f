package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FallbackStatus is returned whenever the completion API cannot be reached
// or answers with something unusable.
const FallbackStatus = "Error retrieving status. Please try again later."

const (
	advisorModel       = "gpt-3.5-turbo"
	advisorMaxTokens   = 60
	advisorTemperature = 0.7
)

// Failure kinds for the outbound completion call. They never reach the
// client; they exist so the logs can tell a dead network from a bad key.
var (
	ErrAdvisorNetwork   = errors.New("advisor: network failure")
	ErrAdvisorAuth      = errors.New("advisor: authentication failure")
	ErrAdvisorMalformed = errors.New("advisor: malformed response")
)

// AdvisorService asks a chat-completion API for a short encouraging
// summary of the user's logged totals.
type AdvisorService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewAdvisorService(logger *zap.Logger) *AdvisorService {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &AdvisorService{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func buildHealthPrompt(t HealthTotals) string {
	return fmt.Sprintf(
		"Given this user's recent health data:\n"+
			"- Total Calories Consumed: %g kcal\n"+
			"- Total Water Intake: %g ml\n"+
			"- Total Walking Duration: %g minutes\n\n"+
			"Please provide a short, encouraging health status summary that includes a brief evaluation "+
			"of the user's calorie intake, hydration, and physical activity.",
		t.Calories, t.WaterML, t.WalkMinutes,
	)
}

// StatusMessage returns the advisor's summary for the totals, or
// FallbackStatus on any failure. It never returns an error.
func (s *AdvisorService) StatusMessage(ctx context.Context, totals HealthTotals) string {
	status, err := s.complete(ctx, buildHealthPrompt(totals))
	if err != nil {
		switch {
		case errors.Is(err, ErrAdvisorAuth):
			s.logger.Error("advisor rejected API key", zap.Error(err))
		case errors.Is(err, ErrAdvisorMalformed):
			s.logger.Error("advisor returned unusable response", zap.Error(err))
		default:
			s.logger.Warn("advisor unreachable", zap.Error(err))
		}
		return FallbackStatus
	}
	return status
}

func (s *AdvisorService) complete(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: advisorModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a health advisor."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   advisorMaxTokens,
		Temperature: advisorTemperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorMalformed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrAdvisorAuth, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: status %d: %s", ErrAdvisorMalformed, resp.StatusCode, respBody)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorMalformed, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrAdvisorMalformed)
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
