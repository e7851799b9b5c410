package game

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com"
	DefaultOpenAIModel   = "gpt-4o-mini"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAISource asks a chat completion model for progressive hints
type OpenAISource struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewOpenAISource(apiKey, model, baseURL string) *OpenAISource {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return &OpenAISource{
		apiKey:  strings.Trim(strings.TrimSpace(apiKey), `"'`),
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
	}
}

func hintPrompt(word string, count int) string {
	if count == 1 {
		return fmt.Sprintf(
			"Give ONE short hint for kids to guess the word '%s'. "+
				"Do NOT reveal the word in the hint.\n"+
				"Format: Hint 1: [hint]", word)
	}
	return fmt.Sprintf(
		"Give THREE progressive hints for kids to guess the word '%s'. "+
			"Each hint should be more helpful than the previous one. "+
			"Do NOT reveal the word in any hint. Keep each hint short.\n"+
			"Format: Hint 1: [first hint]\nHint 2: [second hint]\nHint 3: [third hint]", word)
}

func (s *OpenAISource) FetchHints(ctx context.Context, word string, count int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: missing OPENAI_API_KEY", ErrProviderUnavailable)
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: hintPrompt(word, count)}},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrMalformedResponse, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrMalformedResponse)
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
