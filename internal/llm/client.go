package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// Client defines the interface for LLM providers. ClassifyBatch returns
// exactly one result per input description, in input order. Providers return
// an error only for transport or protocol failures; a description the model
// could not place comes back as a PENDING result, not an error.
type Client interface {
	ClassifyBatch(ctx context.Context, descriptions []string) ([]model.ClassificationResult, error)
}

// Config holds provider settings for the LLM stage.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// NewClient creates a raw LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		return newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
