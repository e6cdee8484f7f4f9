package utils

import (
	"context"
	"fmt"
	"strings"
)

// Capabilities a completion call may be granted. The prompt builder declares
// them per request shape; providers map them onto whatever tooling they have.
const (
	CapabilityPlaceLookup = "place_lookup"
	CapabilityWebSearch   = "web_search"
)

// CompletionOptions shape a single completion call. JSONResponse requests the
// provider's structured-output mode; providers that cannot combine it with
// capability tools must let the tools win.
type CompletionOptions struct {
	Capabilities      []string
	SystemInstruction string
	JSONResponse      bool
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// NewCompletionClient builds a provider-specific completion client.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", provider)
	}
}
