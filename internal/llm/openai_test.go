package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{APIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "missing API key",
			config:  Config{APIKey: ""},
			wantErr: true,
		},
		{
			name: "custom model and settings",
			config: Config{
				APIKey:      "test-key",
				Model:       "gpt-4o",
				Temperature: 0.5,
				MaxTokens:   200,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := newOpenAIClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func chatCompletion(content string) string {
	resp := map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
				"index":         0,
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestOpenAIClassifyBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		messages, ok := req["messages"].([]any)
		require.True(t, ok)
		assert.Len(t, messages, 2)

		content := `{"results":[` +
			`{"index":1,"category":"Dining","subcategory":"FoodDelivery","vendor":"zomato","confidence":0.85},` +
			`{"index":2,"category":"PENDING","confidence":0}]}`
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletion(content)))
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.ClassifyBatch(context.Background(), []string{
		"UPI/DR/400123/ZOMATO",
		"XQZV 0042",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Dining", results[0].Category)
	assert.Equal(t, "FoodDelivery", results[0].Subcategory)
	assert.Equal(t, "zomato", results[0].Vendor)
	assert.InDelta(t, 0.85, results[0].Confidence, 0.001)
	assert.True(t, results[0].Resolved())

	assert.False(t, results[1].Resolved())
	assert.Equal(t, "llm_unresolved", results[1].Meta["reason"])
}

func TestOpenAIClassifyBatchMissingIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		content := `{"results":[{"index":2,"category":"Transport","subcategory":"Cab","vendor":"uber","confidence":0.8}]}`
		_, _ = w.Write([]byte(chatCompletion(content)))
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.ClassifyBatch(context.Background(), []string{"first", "UBER RIDE"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Resolved())
	assert.Equal(t, "llm_no_result", results[0].Meta["reason"])
	assert.Equal(t, "Transport", results[1].Category)
}

func TestOpenAIClassifyBatchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ClassifyBatch(context.Background(), []string{"anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestOpenAIClassifyBatchEmpty(t *testing.T) {
	client, err := newOpenAIClient(Config{APIKey: "test-key"})
	require.NoError(t, err)

	results, err := client.ClassifyBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestParseBatchClassification(t *testing.T) {
	t.Run("markdown wrapped", func(t *testing.T) {
		content := "```json\n{\"results\":[{\"index\":1,\"category\":\"Bills\",\"subcategory\":\"Utilities\",\"confidence\":0.9}]}\n```"
		results, err := parseBatchClassification(content, 1)
		require.NoError(t, err)
		assert.Equal(t, "Bills", results[0].Category)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := parseBatchClassification("not json at all", 1)
		require.Error(t, err)
	})

	t.Run("empty results", func(t *testing.T) {
		_, err := parseBatchClassification(`{"results":[]}`, 1)
		require.Error(t, err)
	})

	t.Run("confidence clamped", func(t *testing.T) {
		content := `{"results":[{"index":1,"category":"Shopping","subcategory":"Misc","confidence":1.7}]}`
		results, err := parseBatchClassification(content, 1)
		require.NoError(t, err)
		assert.Equal(t, 1.0, results[0].Confidence)
	})

	t.Run("out of range index ignored", func(t *testing.T) {
		content := `{"results":[{"index":9,"category":"Shopping","subcategory":"Misc","confidence":0.5}]}`
		results, err := parseBatchClassification(content, 1)
		require.NoError(t, err)
		assert.False(t, results[0].Resolved())
	})
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.content))
		})
	}
}
