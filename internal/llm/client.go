/**
* Name:        client.go
* Description: OpenAI chat-completions client
* Workflow:    prompt -> /chat/completions -> first choice text
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ShaadiBiodata/internal/logger"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 30 * time.Second

var ErrEmptyCompletion = errors.New("completion has no choices")

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type Client struct {
	http  *resty.Client
	model string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json").
			SetTimeout(requestTimeout),
		model: model,
	}
}

// GenerateText sends prompt as a single user message and returns the trimmed reply.
func (c *Client) GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	var (
		chatResp ChatResponse
		apiErr   apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(ChatRequest{
			Model:       c.model,
			Messages:    []ChatMessage{{Role: "user", Content: prompt}},
			MaxTokens:   maxTokens,
			Temperature: temperature,
		}).
		SetResult(&chatResp).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("GenerateText(): request failed: %w", err)
	}
	if resp.IsError() {
		logger.Log.Warnw("GenerateText(): language model rejected request",
			"status", resp.StatusCode(), "type", apiErr.Error.Type, "message", apiErr.Error.Message)
		return "", fmt.Errorf("GenerateText(): language model answered with status: %s", resp.Status())
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("GenerateText(): %w", ErrEmptyCompletion)
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
