package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface on Google's
// Gemini models.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (CompletionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	applyCompletionOptions(model, opts)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}

// applyCompletionOptions configures a model for one call. Capability hints
// already ride in the prompt text (this client version exposes no search
// tool), but a capability call must still not pin a response MIME type: the
// model needs free-form output to weave looked-up facts in, and the builders
// that declare capabilities never ask for JSON mode anyway.
func applyCompletionOptions(model *genai.GenerativeModel, opts CompletionOptions) {
	model.SetTemperature(0.1)
	model.SetTopP(0.5)
	model.SetTopK(20)
	model.SetMaxOutputTokens(8192)

	if opts.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(opts.SystemInstruction)},
		}
	}

	if opts.JSONResponse && len(opts.Capabilities) == 0 {
		model.ResponseMIMEType = "application/json"
	}
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
