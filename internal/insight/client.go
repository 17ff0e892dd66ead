// Package insight orchestrates the AI psychology analysis: windowing the
// trade history, delegating to the remote provider, and shaping failures
// into safe fallback results.
package insight

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	apperrors "reflectr/internal/errors"
)

// LLMClient abstracts the remote completion provider so the pipeline can
// be tested with a fake.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements LLMClient using the OpenAI API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI LLM client.
func NewOpenAIClient(apiKey string, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends a prompt to the LLM and returns the response text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", apperrors.NewInsightError("completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewInsightError("completion", errors.New("empty response"))
	}
	return resp.Choices[0].Message.Content, nil
}
