package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompletionClient implements CompletionClientInterface on OpenAI chat
// completions. The declared capabilities have no OpenAI-side tooling here, so
// they only influence the prompt text the builder already rendered.
type OpenAICompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICompletionClient(apiKey, model string) CompletionClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if opts.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.1,
	}
	if opts.JSONResponse && len(opts.Capabilities) == 0 {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
