package groq

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/laukik86/chatmate/internal/core/domain"
)

// Client speaks Groq's OpenAI-compatible chat completions API. One Client is
// bound to one model; the pipeline wires a fast model for everything except
// SQL generation, which gets the smart model.
type Client struct {
	api   *openai.Client
	model string
}

func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func (c *Client) Complete(ctx context.Context, prompt domain.Prompt) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(prompt.History)+2)
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt.System,
		})
	}
	for _, turn := range prompt.History {
		role := openai.ChatMessageRoleUser
		if turn.Role == domain.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt.User,
	})

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: prompt.Temperature,
	}
	if prompt.Temperature == 0 {
		// The library marshals Temperature with omitempty, so an exact 0
		// would vanish from the wire request and the provider default (1.0)
		// would apply. The smallest positive float is its stand-in for 0.
		req.Temperature = math.SmallestNonzeroFloat32
	}
	if prompt.JSONObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapTemporaryIfNeeded("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
