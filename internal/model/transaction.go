// Package model defines the core domain models used throughout the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pending is the sentinel category for transactions no stage has resolved yet.
const Pending = "PENDING"

// Source identifies which cascade stage produced a transaction's category.
type Source string

// Classification source constants, in cascade order.
const (
	SourceNone      Source = ""
	SourceRegex     Source = "regex"
	SourceHeuristic Source = "heuristic"
	SourceBert      Source = "bert"
	SourceLLM       Source = "llm"
)

// Transaction is the canonical record produced by normalization and mutated
// in place by each cascade stage that classifies it.
type Transaction struct {
	Date        time.Time
	ID          string
	StatementID string
	OwnerID     string
	Description string // Raw description text from the statement
	Vendor      string
	Category    string
	Subcategory string
	Source      Source
	Amount      decimal.Decimal // negative = outflow, positive = inflow, zero = undetermined
	Confidence  float64
}

// Resolved reports whether the transaction has a final category.
func (t *Transaction) Resolved() bool {
	return t.Category != "" && t.Category != Pending
}

// NeedsClassification reports whether any stage should still look at the
// transaction: no category yet, or still pending.
func (t *Transaction) NeedsClassification() bool {
	return !t.Resolved()
}
