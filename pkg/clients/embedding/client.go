package embedding

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxBatchSize caps the number of inputs per embeddings request.
	MaxBatchSize = 64
	// MaxRetries bounds retries per batch.
	MaxRetries = 3
)

// Client wraps the OpenAI embeddings API.
type Client struct {
	client    openai.Client
	modelName string
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%s is required for embeddings", config.EnvOpenAIAPIKey)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
	}
	// base_url override supports other OpenAI-compatible services.
	if cfg.Embedding.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.Embedding.BaseURL))
	}

	return &Client{
		client:    openai.NewClient(opts...),
		modelName: cfg.Embedding.ModelName,
	}, nil
}

// Embed returns the vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	embeddings, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}

// EmbedBatch embeds texts in MaxBatchSize slices, retrying each slice with
// exponential backoff.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}

	result := make([][]float64, 0, len(texts))
	for i := 0; i < len(texts); i += MaxBatchSize {
		end := i + MaxBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		embeddings, err := c.embedBatchWithRetry(ctx, texts[i:end])
		if err != nil {
			return nil, fmt.Errorf("failed to get embeddings for batch %d-%d: %w", i, end, err)
		}
		result = append(result, embeddings...)
	}
	return result, nil
}

func (c *Client) embedBatchWithRetry(ctx context.Context, texts []string) ([][]float64, error) {
	var lastErr error

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			// 1s, 2s, 4s
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			log.Warnf("retrying embedding request (attempt %d/%d) after %v", attempt+1, MaxRetries, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		embeddings, err := c.embedBatchOnce(ctx, texts)
		if err == nil {
			return embeddings, nil
		}

		lastErr = err
		log.Errorf("embedding request failed (attempt %d/%d): %v", attempt+1, MaxRetries, err)
	}

	return nil, fmt.Errorf("failed after %d retries: %w", MaxRetries, lastErr)
}

func (c *Client) embedBatchOnce(ctx context.Context, texts []string) ([][]float64, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfArrayOfStrings: texts,
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.modelName),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	result := make([][]float64, 0, len(resp.Data))
	for _, item := range resp.Data {
		result = append(result, item.Embedding)
	}
	return result, nil
}
