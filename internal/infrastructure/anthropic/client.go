// Package anthropic calls the Anthropic Messages API for text completions.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sweaty/internal/domain/entity"
	"sweaty/internal/usecase"
	apperrors "sweaty/pkg/errors"
	"sweaty/pkg/logger"
)

const (
	defaultAPIURL    = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	userAgent        = "sweaty-api/1.0"
	maxLoggedBody    = 512
)

type messagesRequest struct {
	Model       string    `json:"model"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Usage   usage          `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient returns nil when apiKey is empty so callers can treat a missing
// key as "not configured" before attempting any call.
func NewClient(apiKey, model string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithURL points the client at another endpoint (tests, proxies).
func (c *Client) WithURL(apiURL string) *Client {
	c.apiURL = apiURL
	return c
}

var _ usecase.CompletionClient = (*Client)(nil)

// Complete sends the system prompt and conversation and returns the
// concatenated text blocks of the reply.
func (c *Client) Complete(ctx context.Context, req usecase.CompletionRequest) (string, error) {
	messages := make([]message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := m.Role
		if role != entity.RoleAssistant {
			role = entity.RoleUser
		}
		messages = append(messages, message{Role: role, Content: m.Content})
	}

	payload, err := json.Marshal(messagesRequest{
		Model:       c.model,
		System:      req.System,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", apperrors.CompletionService("Failed to encode AI request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.CompletionService("Failed to build AI request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("anthropic: request failed: %v", err)
		return "", apperrors.CompletionService("Failed to reach AI service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.CompletionService("Failed to read AI response", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("anthropic: status=%d body=%s", resp.StatusCode, logger.Truncate(string(body), maxLoggedBody))
		return "", apperrors.CompletionService("AI service request failed", fmt.Errorf("anthropic: HTTP %d", resp.StatusCode))
	}

	var apiResp messagesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", apperrors.Parse("Failed to parse AI response", err)
	}

	var text strings.Builder
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	logger.Debug("anthropic: completion done (tokens in=%d out=%d)", apiResp.Usage.InputTokens, apiResp.Usage.OutputTokens)

	return text.String(), nil
}
