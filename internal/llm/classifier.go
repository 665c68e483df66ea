package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SREEDEEP-DEY/SpendSight/internal/common"
	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
	"github.com/SREEDEEP-DEY/SpendSight/internal/service"
)

// Classifier wraps a Client with caching, retries, and graceful degradation.
// It never returns an error from classification: when the provider fails
// after all retries, every transaction in the batch comes back PENDING with
// an error marker so the run can finish and a later re-run can pick them up.
type Classifier struct {
	client Client
	cache  *resultCache
	logger *slog.Logger
	retry  service.RetryOptions
}

// NewClassifier creates an LLM-backed classifier from provider configuration.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewClassifierWithClient(client, cfg, logger), nil
}

// NewClassifierWithClient wraps an existing client. Tests use this to inject
// fakes.
func NewClassifierWithClient(client Client, cfg Config, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	return &Classifier{
		client: client,
		cache:  newResultCache(cfg.CacheTTL),
		logger: logger,
		retry: service.RetryOptions{
			MaxAttempts:  maxRetries,
			InitialDelay: retryDelay,
			MaxDelay:     time.Minute,
			Multiplier:   2.0,
		},
	}
}

// ClassifyBatch classifies every description, serving repeats from cache and
// sending the rest to the provider in one call.
func (c *Classifier) ClassifyBatch(ctx context.Context, descriptions []string) []model.ClassificationResult {
	out := make([]model.ClassificationResult, len(descriptions))

	var missIdx []int
	var missDesc []string
	for i, desc := range descriptions {
		if cached, ok := c.cache.get(desc); ok {
			out[i] = cached
			continue
		}
		missIdx = append(missIdx, i)
		missDesc = append(missDesc, desc)
	}

	if len(missDesc) == 0 {
		return out
	}

	var fetched []model.ClassificationResult
	err := common.WithRetry(ctx, func() error {
		results, callErr := c.client.ClassifyBatch(ctx, missDesc)
		if callErr != nil {
			return callErr
		}
		if len(results) != len(missDesc) {
			return fmt.Errorf("provider returned %d results for %d descriptions", len(results), len(missDesc))
		}
		fetched = results
		return nil
	}, c.retry)

	if err != nil {
		c.logger.Error("LLM batch classification failed, degrading batch to pending",
			"batch_size", len(missDesc),
			"error", err)
		for _, i := range missIdx {
			out[i] = model.PendingResult("", 0, map[string]any{"error": "llm_failed"})
		}
		return out
	}

	for j, i := range missIdx {
		out[i] = fetched[j]
		c.cache.set(missDesc[j], fetched[j])
	}
	return out
}

// Close releases the cache's background resources.
func (c *Classifier) Close() {
	c.cache.Close()
}
