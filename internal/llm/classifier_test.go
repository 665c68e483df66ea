package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// fakeClient scripts ClassifyBatch responses for Classifier tests.
type fakeClient struct {
	results [][]model.ClassificationResult
	errs    []error
	calls   int
}

func (f *fakeClient) ClassifyBatch(_ context.Context, descriptions []string) ([]model.ClassificationResult, error) {
	call := f.calls
	f.calls++
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if call < len(f.results) {
		return f.results[call], nil
	}

	out := make([]model.ClassificationResult, len(descriptions))
	for i := range out {
		out[i] = model.Resolved("Shopping", "Misc", "", 0.6, nil)
	}
	return out, nil
}

func fastConfig() Config {
	return Config{MaxRetries: 2, RetryDelay: time.Millisecond}
}

func TestClassifierDegradesOnTotalFailure(t *testing.T) {
	client := &fakeClient{errs: []error{
		errors.New("connection refused"),
		errors.New("connection refused"),
	}}
	c := NewClassifierWithClient(client, fastConfig(), nil)
	defer c.Close()

	results := c.ClassifyBatch(context.Background(), []string{"one", "two", "three"})
	require.Len(t, results, 3)
	assert.Equal(t, 2, client.calls)

	for _, r := range results {
		assert.Equal(t, model.Pending, r.Category)
		assert.Equal(t, 0.0, r.Confidence)
		assert.Equal(t, "llm_failed", r.Meta["error"])
	}
}

func TestClassifierRetriesThenSucceeds(t *testing.T) {
	client := &fakeClient{
		errs: []error{errors.New("timeout"), nil},
		results: [][]model.ClassificationResult{
			nil,
			{model.Resolved("Dining", "FoodDelivery", "zomato", 0.85, nil)},
		},
	}
	c := NewClassifierWithClient(client, fastConfig(), nil)
	defer c.Close()

	results := c.ClassifyBatch(context.Background(), []string{"ZOMATO ORDER"})
	require.Len(t, results, 1)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, "Dining", results[0].Category)
}

func TestClassifierLengthMismatchIsRetried(t *testing.T) {
	client := &fakeClient{
		results: [][]model.ClassificationResult{
			{model.Resolved("Dining", "Food", "", 0.8, nil)}, // one result for two inputs
		},
	}
	c := NewClassifierWithClient(client, fastConfig(), nil)
	defer c.Close()

	results := c.ClassifyBatch(context.Background(), []string{"a", "b"})
	require.Len(t, results, 2)
	assert.Equal(t, 2, client.calls)
	assert.True(t, results[0].Resolved())
	assert.True(t, results[1].Resolved())
}

func TestClassifierServesRepeatsFromCache(t *testing.T) {
	client := &fakeClient{}
	c := NewClassifierWithClient(client, fastConfig(), nil)
	defer c.Close()

	first := c.ClassifyBatch(context.Background(), []string{"AMAZON PAY ORDER"})
	require.True(t, first[0].Resolved())
	require.Equal(t, 1, client.calls)

	second := c.ClassifyBatch(context.Background(), []string{"amazon  pay order"})
	assert.Equal(t, 1, client.calls, "normalized repeat should hit the cache")
	assert.Equal(t, first[0].Category, second[0].Category)
}

func TestClassifierDoesNotCachePending(t *testing.T) {
	client := &fakeClient{
		results: [][]model.ClassificationResult{
			{model.PendingResult("llm_unresolved", 0, nil)},
		},
	}
	c := NewClassifierWithClient(client, fastConfig(), nil)
	defer c.Close()

	c.ClassifyBatch(context.Background(), []string{"mystery"})
	c.ClassifyBatch(context.Background(), []string{"mystery"})
	assert.Equal(t, 2, client.calls)
}

func TestResultCache(t *testing.T) {
	cache := newResultCache(time.Minute)
	defer cache.Close()

	_, ok := cache.get("missing")
	assert.False(t, ok)

	cache.set("UPI/ZOMATO", model.Resolved("Dining", "FoodDelivery", "zomato", 0.9, nil))
	got, ok := cache.get("upi/zomato")
	require.True(t, ok)
	assert.Equal(t, "Dining", got.Category)
	assert.Equal(t, 1, cache.size())

	cache.set("pending thing", model.PendingResult("low", 0.1, nil))
	assert.Equal(t, 1, cache.size())
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(600)

	// Fresh bucket starts full.
	assert.True(t, rl.tryAcquire())
	require.NoError(t, rl.wait(context.Background()))

	drained := newRateLimiter(60)
	drained.tokens = 0
	drained.lastRefill = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := drained.wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
