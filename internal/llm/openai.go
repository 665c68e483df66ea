package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SREEDEEP-DEY/SpendSight/internal/embedding"
	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// openAIClient implements the Client interface for the OpenAI API.
type openAIClient struct {
	httpClient  *http.Client
	limiter     *rateLimiter
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newOpenAIClient creates a new OpenAI API client.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	mdl := cfg.Model
	if mdl == "" {
		mdl = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	// Token budget per transaction; the request scales it by batch size.
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 80
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}

	return &openAIClient{
		apiKey:      cfg.APIKey,
		model:       mdl,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		limiter:     newRateLimiter(cfg.RateLimit),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

const systemPrompt = "You are a financial transaction classifier for Indian bank statements. " +
	"You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, " +
	"markdown formatting, or commentary before or after the JSON. " +
	"Start your response directly with { and end with }."

// ClassifyBatch sends one chat completion request covering every description
// and maps the model's per-index answers back onto the batch.
func (c *openAIClient) ClassifyBatch(ctx context.Context, descriptions []string) ([]model.ClassificationResult, error) {
	if len(descriptions) == 0 {
		return nil, nil
	}

	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildBatchPrompt(descriptions)},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens * len(descriptions),
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	return parseBatchClassification(response.Choices[0].Message.Content, len(descriptions))
}

// buildBatchPrompt renders the numbered descriptions plus the label catalog
// the model must choose from.
func buildBatchPrompt(descriptions []string) string {
	var b strings.Builder
	b.WriteString("Classify each bank transaction narration below into one of the allowed labels.\n")
	b.WriteString("Allowed labels (Category.Subcategory):\n")
	b.WriteString(labelCatalog())
	b.WriteString("\n\nTransactions:\n")
	for i, desc := range descriptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, desc)
	}
	b.WriteString("\nRespond with JSON of the form ")
	b.WriteString(`{"results":[{"index":1,"category":"Dining","subcategory":"FoodDelivery","vendor":"zomato","confidence":0.85}]}`)
	b.WriteString(". Include every index exactly once. If a narration cannot be placed, ")
	b.WriteString(`use "PENDING" as the category with confidence 0.`)
	return b.String()
}

var (
	labelCatalogOnce sync.Once
	labelCatalogStr  string
)

// labelCatalog lists the taxonomy labels, one per line, in stable order.
func labelCatalog() string {
	labelCatalogOnce.Do(func() {
		labels := make([]string, 0, len(embedding.DefaultTaxonomy))
		for label := range embedding.DefaultTaxonomy {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		labelCatalogStr = strings.Join(labels, "\n")
	})
	return labelCatalogStr
}

// batchResponse is the JSON shape the model is instructed to return.
type batchResponse struct {
	Results []struct {
		Index       int     `json:"index"`
		Category    string  `json:"category"`
		Subcategory string  `json:"subcategory"`
		Vendor      string  `json:"vendor"`
		Confidence  float64 `json:"confidence"`
	} `json:"results"`
}

// parseBatchClassification maps the model's answers back onto the batch.
// Indexes the model skipped come back as PENDING rather than failing the
// whole call.
func parseBatchClassification(content string, n int) ([]model.ClassificationResult, error) {
	content = cleanMarkdownWrapper(content)

	var parsed batchResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, fmt.Errorf("no results found in response")
	}

	out := make([]model.ClassificationResult, n)
	seen := make([]bool, n)
	for _, r := range parsed.Results {
		i := r.Index - 1
		if i < 0 || i >= n || seen[i] {
			continue
		}
		seen[i] = true

		conf := r.Confidence
		if conf < 0 {
			conf = 0
		} else if conf > 1 {
			conf = 1
		}

		category := strings.TrimSpace(r.Category)
		if category == "" || strings.EqualFold(category, model.Pending) {
			out[i] = model.PendingResult("llm_unresolved", conf, map[string]any{"source": "llm"})
			continue
		}
		out[i] = model.Resolved(category, strings.TrimSpace(r.Subcategory), strings.ToLower(strings.TrimSpace(r.Vendor)), conf, map[string]any{"source": "llm"})
	}

	for i := range out {
		if !seen[i] {
			out[i] = model.PendingResult("llm_no_result", 0, map[string]any{"source": "llm"})
		}
	}
	return out, nil
}

// cleanMarkdownWrapper strips code fences some models wrap around JSON.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
	}
	return strings.TrimSpace(content)
}

// openAIResponse represents the OpenAI API response structure.
type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Created int64 `json:"created"`
}
