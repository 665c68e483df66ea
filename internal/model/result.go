package model

// ClassificationResult is the value every cascade stage returns. The shape is
// the interchange contract of the whole cascade: a stage either resolves a
// transaction or hands back a PENDING result with diagnostic metadata, but it
// never returns an error for a bad description.
type ClassificationResult struct {
	Meta        map[string]any
	Category    string
	Subcategory string
	Vendor      string
	Confidence  float64
}

// Resolved reports whether the result carries a real category.
func (r ClassificationResult) Resolved() bool {
	return r.Category != "" && r.Category != Pending
}

// Prediction renders the result as the "Category.Subcategory" label stored in
// the classification log.
func (r ClassificationResult) Prediction() string {
	if r.Subcategory == "" {
		return r.Category
	}
	return r.Category + "." + r.Subcategory
}

// Resolved constructs a successful classification result.
func Resolved(category, subcategory, vendor string, confidence float64, meta map[string]any) ClassificationResult {
	if meta == nil {
		meta = map[string]any{}
	}
	return ClassificationResult{
		Category:    category,
		Subcategory: subcategory,
		Vendor:      vendor,
		Confidence:  confidence,
		Meta:        meta,
	}
}

// PendingResult constructs the explicit fallback variant. The reason lands in
// metadata so later stages and humans can see why the stage gave up.
func PendingResult(reason string, confidence float64, meta map[string]any) ClassificationResult {
	if meta == nil {
		meta = map[string]any{}
	}
	if reason != "" {
		if _, ok := meta["reason"]; !ok {
			meta["reason"] = reason
		}
	}
	return ClassificationResult{
		Category:   Pending,
		Confidence: confidence,
		Meta:       meta,
	}
}
