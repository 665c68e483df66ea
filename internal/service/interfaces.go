// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// Storage defines the contract for our persistence layer. The engine only
// ever addresses one statement's transactions from one worker at a time, so
// implementations do not need cross-statement write coordination.
type Storage interface {
	// Document and statement records (the idempotency anchor).
	CreateDocumentAndStatement(ctx context.Context, ownerID, bank, filePath, originalFilename string) (docID, statementID string, err error)
	UpdateDocumentStatus(ctx context.Context, docID, status string) error
	// FindStatement returns the most recent statement for (owner, filename),
	// or common.ErrNotFound when the file has never been processed.
	FindStatement(ctx context.Context, ownerID, originalFilename string) (string, error)

	// Transaction operations.
	InsertTransactions(ctx context.Context, txns []model.Transaction) ([]string, error)
	// GetUnresolved returns transactions with no category or category PENDING.
	GetUnresolved(ctx context.Context, statementID string) ([]model.Transaction, error)
	// GetForEmbedding returns transactions matching the Stage 3 selection
	// predicate: unresolved, or regex/heuristic-sourced below lowConf.
	GetForEmbedding(ctx context.Context, statementID string, lowConf float64) ([]model.Transaction, error)
	// GetForLLM returns transactions matching the Stage 4 selection predicate:
	// PENDING, or bert-sourced below lowConf.
	GetForLLM(ctx context.Context, statementID string, lowConf float64) ([]model.Transaction, error)
	ApplyClassification(ctx context.Context, txnID string, result model.ClassificationResult, source model.Source) error

	// Classification log (append-only).
	AppendLog(ctx context.Context, entry model.LogEntry) error
	// AppendLogs bulk-appends entries, falling back to per-row writes when the
	// bulk insert is rejected.
	AppendLogs(ctx context.Context, entries []model.LogEntry) error

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
