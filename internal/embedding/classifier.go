package embedding

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
	"github.com/SREEDEEP-DEY/SpendSight/internal/rules"
)

// Similarity thresholds.
const (
	minSimForConfident = 0.50
	lowerSimForPending = 0.42
	highConfSim        = 0.80
)

// Classifier matches narrations against taxonomy prototypes by cosine
// similarity. The prototype index is built lazily on first use, so
// constructing a Classifier is free.
type Classifier struct {
	embedder  Embedder
	taxonomy  map[string][]string
	heuristic func(string) model.ClassificationResult

	initOnce sync.Once
	initErr  error
	labels   []string
	protos   [][]float64
}

// New returns a classifier over the given embedder and taxonomy. A nil
// taxonomy uses DefaultTaxonomy; heuristic is the stage-2 fallback used when
// similarity is too low to trust, and may be nil.
func New(embedder Embedder, taxonomy map[string][]string, heuristic func(string) model.ClassificationResult) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy
	}
	return &Classifier{embedder: embedder, taxonomy: taxonomy, heuristic: heuristic}
}

func (c *Classifier) buildIndex() {
	var labels []string
	var phrases []string

	// Deterministic label order.
	keys := make([]string, 0, len(c.taxonomy))
	for k := range c.taxonomy {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, label := range keys {
		for _, phrase := range c.taxonomy[label] {
			labels = append(labels, label)
			phrases = append(phrases, phrase)
		}
	}

	// A tiny taxonomy gets padded with generic phrases so nearest-neighbor
	// still has something to land on.
	if len(phrases) < 50 {
		extra := []string{
			"Salary credit", "EMI payment", "ATM withdrawal", "UPI payment", "NEFT transfer",
			"Amazon purchase", "Zomato order", "Uber ride", "BPCL petrol", "Electricity bill",
		}
		for _, p := range extra {
			labels = append(labels, "Misc.Misc")
			phrases = append(phrases, p)
		}
	}

	embs, err := c.embedder.Embed(phrases)
	if err != nil {
		c.initErr = fmt.Errorf("failed to embed taxonomy prototypes: %w", err)
		return
	}
	c.labels = labels
	c.protos = embs
}

// Classify resolves one narration. It never panics; any internal failure
// comes back as a PENDING result with the error recorded in metadata.
func (c *Classifier) Classify(text string) (result model.ClassificationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.PendingResult("exception", 0, map[string]any{"error": fmt.Sprint(r)})
		}
	}()

	if strings.TrimSpace(text) == "" {
		return model.PendingResult("empty_text", 0, nil)
	}

	c.initOnce.Do(c.buildIndex)
	if c.initErr != nil {
		return model.PendingResult("index_init_failed", 0, map[string]any{"error": c.initErr.Error()})
	}

	textNorm := NormalizeText(text)

	if o, ok := applyOverrides(textNorm); ok {
		return model.Resolved(o.category, o.subcategory, "", o.confidence, map[string]any{
			"source":          "rule_override",
			"rule":            o.rule,
			"normalized_text": textNorm,
		})
	}

	// Vendor bias: a known merchant token nudges confidence up when the
	// nearest prototype agrees with the merchant's category.
	var vendorHit string
	var vendorBias rules.Prediction
	for _, key := range rules.VendorKeys() {
		if strings.Contains(textNorm, key) {
			vendorHit = key
			vendorBias = rules.VendorCategoryMap[key]
			break
		}
	}

	qembs, err := c.embedder.Embed([]string{textNorm})
	if err != nil {
		return model.PendingResult("embed_failed", 0, map[string]any{"error": err.Error()})
	}
	q := qembs[0]

	type scored struct {
		label string
		sim   float64
	}
	top := make([]scored, 0, len(c.protos))
	for i, p := range c.protos {
		top = append(top, scored{c.labels[i], dot(q, p)})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].sim > top[j].sim })
	if len(top) > 8 {
		top = top[:8]
	}

	bestLabel, rawConf := top[0].label, top[0].sim
	secondSim := 0.0
	if len(top) > 1 {
		secondSim = top[1].sim
	}
	margin := rawConf - secondSim

	var confidence float64
	switch {
	case rawConf >= highConfSim && margin > 0.03:
		confidence = 1.0
	case rawConf >= minSimForConfident:
		base := (rawConf - minSimForConfident) / (highConfSim - minSimForConfident)
		confidence = clamp01(base + margin*0.5)
	default:
		confidence = clamp01((rawConf - lowerSimForPending) / (minSimForConfident - lowerSimForPending))
	}

	if vendorHit != "" {
		combined := vendorBias.Category + "." + vendorBias.Subcategory
		if strings.Contains(bestLabel, vendorBias.Category) || combined == bestLabel {
			confidence = math.Max(confidence, 0.70)
		}
	}

	meta := map[string]any{
		"source":          "bert_similarity",
		"raw_conf":        rawConf,
		"margin":          margin,
		"best_label":      bestLabel,
		"normalized_text": textNorm,
	}
	if vendorHit != "" {
		meta["vendor_hit"] = vendorHit
	}

	// Low similarity: hand the original text to the heuristic stage and keep
	// whichever confidence is stronger.
	if rawConf < minSimForConfident {
		if c.heuristic != nil {
			if h := c.heuristic(text); h.Resolved() {
				conf := math.Max(confidence, math.Min(0.9, h.Confidence))
				return model.Resolved(h.Category, h.Subcategory, h.Vendor, round3(conf), map[string]any{
					"source":          "heuristics_fallback",
					"heuristics_meta": h.Meta,
					"normalized_text": textNorm,
					"bert_best":       bestLabel,
				})
			}
		}
		return model.PendingResult("low_similarity", round3(confidence), meta)
	}

	category, subcategory := splitLabel(bestLabel)
	return model.Resolved(category, subcategory, "", round3(confidence), meta)
}

func splitLabel(label string) (string, string) {
	parts := strings.SplitN(label, ".", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return label, ""
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	s := 0.0
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
