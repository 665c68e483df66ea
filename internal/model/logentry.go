package model

import "time"

// LogEntry is one classifier's verdict on one transaction. Entries are
// append-only: idempotent re-runs append new entries, they never overwrite.
type LogEntry struct {
	CreatedAt  time.Time
	Meta       map[string]any
	ID         string
	TxnID      string
	Stage      Source
	Prediction string
	Confidence float64
}
