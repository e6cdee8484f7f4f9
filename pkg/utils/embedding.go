package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

const embeddingDimensions = 1536

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewEmbeddingClient picks an embedding backend. "local" needs no credential
// and is the default when no OpenAI key is configured.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		if model == "" {
			model = string(openai.SmallEmbedding3)
		}
		return &OpenAIEmbeddingClient{
			client: openai.NewClient(apiKey),
			model:  openai.EmbeddingModel(model),
		}, nil
	case "local":
		return &LocalHashEmbeddingClient{}, nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings call failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings returned no data")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// LocalHashEmbeddingClient is a credential-free fallback that hashes words
// into a normalized vector. Good enough for rough similarity over short
// wishlist snippets, not a substitute for a real embedding model.
type LocalHashEmbeddingClient struct{}

func (c *LocalHashEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, embeddingDimensions)
	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < embeddingDimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector), nil
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
