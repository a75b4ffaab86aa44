package ai

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/charlie-ai-lab/personality-learn/internal/config"
)

const (
	defaultBaseURL = "https://api.minimax.chat/v1"
	defaultModel   = "abab6.5s-chat"
)

// MockNotice is returned instead of calling out when no API key is
// configured.
const MockNotice = "模拟AI响应：\n\n根据您的需求，我为您生成了以下内容。\n\n（这是模拟响应，请配置MINIMAX_API_KEY以使用真实AI）"

// IsMockNotice reports whether content is the keyless-mode notice rather
// than a real completion.
func IsMockNotice(content string) bool {
	return content == MockNotice
}

// TransportError wraps any failure between us and the completion service:
// network errors, non-2xx statuses and malformed response envelopes.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type minimaxProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewMinimaxProvider builds a provider from MINIMAX_API_KEY,
// MINIMAX_API_URL and MINIMAX_MODEL. Minimax exposes an OpenAI-compatible
// chat completion endpoint, so the go-openai client pointed at its base
// URL speaks the wire contract as-is. An empty key puts the provider in
// mock mode: Complete returns a canned notice without a network call.
func NewMinimaxProvider() Provider {
	baseURL := os.Getenv("MINIMAX_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("MINIMAX_MODEL")
	if model == "" {
		model = defaultModel
	}
	apiKey := os.Getenv("MINIMAX_API_KEY")

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &minimaxProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (p *minimaxProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	if p.apiKey == "" {
		log.Debug("MINIMAX_API_KEY not set, returning mock response")
		return MockNotice, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		log.WithError(err).Error("Completion request failed")
		return "", &TransportError{Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &TransportError{Err: errors.New("response missing completion content")}
	}

	return resp.Choices[0].Message.Content, nil
}
