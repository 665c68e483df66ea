// Package engine orchestrates the classification cascade: statement parsing,
// transaction insertion, and the four classifier stages over each statement.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SREEDEEP-DEY/SpendSight/internal/common"
	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
	"github.com/SREEDEEP-DEY/SpendSight/internal/normalize"
	"github.com/SREEDEEP-DEY/SpendSight/internal/service"
)

// Config holds the engine's tunables.
type Config struct {
	Workers          int
	BatchSize        int
	EmbeddingLowConf float64
	LLMFallbackConf  float64
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Workers:          8,
		BatchSize:        32,
		EmbeddingLowConf: 0.50,
		LLMFallbackConf:  0.25,
	}
}

// Engine drives the cascade for statement files.
type Engine struct {
	storage   service.Storage
	parser    StatementParser
	regex     StageFunc
	heuristic StageFunc
	embedding StageFunc
	llm       BatchClassifier
	logger    *slog.Logger
	config    Config
}

// New creates an engine. A nil llm disables Stage 4; transactions that reach
// it stay pending until a later run with a configured provider.
func New(storage service.Storage, p StatementParser, regex, heuristic, embedding StageFunc, llm BatchClassifier, cfg Config, logger *slog.Logger) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	if cfg.EmbeddingLowConf <= 0 {
		cfg.EmbeddingLowConf = DefaultConfig().EmbeddingLowConf
	}
	if cfg.LLMFallbackConf <= 0 {
		cfg.LLMFallbackConf = DefaultConfig().LLMFallbackConf
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		storage:   storage,
		parser:    p,
		regex:     regex,
		heuristic: heuristic,
		embedding: embedding,
		llm:       llm,
		config:    cfg,
		logger:    logger,
	}
}

// ProcessFile runs a single statement file through the full cascade. An
// already-seen file skips parsing and insertion and re-runs only the stage
// selection queries, so repeated runs converge instead of duplicating rows.
// An unrecognized document returns common.ErrUnsupportedDocument.
func (e *Engine) ProcessFile(ctx context.Context, path, ownerID string) (FileMetrics, error) {
	start := time.Now()
	metrics := FileMetrics{Path: path}
	original := filepath.Base(path)

	statementID, err := e.storage.FindStatement(ctx, ownerID, original)
	switch {
	case err == nil:
		metrics.Rerun = true
		e.logger.Info("Statement already processed, re-running classification",
			"file", original, "statement_id", statementID)
	case errors.Is(err, common.ErrNotFound):
		statementID, err = e.ingest(ctx, path, ownerID, original, &metrics)
		if err != nil {
			return metrics, err
		}
	default:
		return metrics, fmt.Errorf("failed to look up statement: %w", err)
	}

	if err := e.classifyStatement(ctx, statementID, &metrics); err != nil {
		return metrics, err
	}

	metrics.Duration = time.Since(start)
	return metrics, nil
}

// ingest parses the file, normalizes its rows, and persists document,
// statement, and transactions.
func (e *Engine) ingest(ctx context.Context, path, ownerID, original string, metrics *FileMetrics) (string, error) {
	bank, rows, err := e.parser.Parse(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", original, err)
	}
	if bank == "" {
		return "", fmt.Errorf("%s: %w", original, common.ErrUnsupportedDocument)
	}
	metrics.Bank = bank

	docID, statementID, err := e.storage.CreateDocumentAndStatement(ctx, ownerID, bank, path, original)
	if err != nil {
		return "", fmt.Errorf("failed to create statement record: %w", err)
	}

	txns := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		txn, ok := normalize.Normalize(row, statementID, ownerID)
		if !ok {
			metrics.Dropped++
			continue
		}
		txns = append(txns, txn)
	}

	if len(txns) > 0 {
		if _, err := e.storage.InsertTransactions(ctx, txns); err != nil {
			return "", fmt.Errorf("failed to insert transactions: %w", err)
		}
	}
	metrics.Inserted = len(txns)

	if err := e.storage.UpdateDocumentStatus(ctx, docID, "parsed"); err != nil {
		return "", fmt.Errorf("failed to update document status: %w", err)
	}

	e.logger.Info("Statement ingested",
		"file", original,
		"bank", bank,
		"transactions", len(txns),
		"dropped_rows", metrics.Dropped)
	return statementID, nil
}

// classifyStatement runs the four stages over one statement, buffering log
// entries and bulk-writing them when the statement finishes.
func (e *Engine) classifyStatement(ctx context.Context, statementID string, metrics *FileMetrics) error {
	var logs []model.LogEntry

	if err := e.runFixedStages(ctx, statementID, metrics, &logs); err != nil {
		return err
	}
	if err := e.runEmbeddingStage(ctx, statementID, metrics, &logs); err != nil {
		return err
	}
	if err := e.runLLMStage(ctx, statementID, metrics, &logs); err != nil {
		return err
	}

	if len(logs) > 0 {
		if err := e.storage.AppendLogs(ctx, logs); err != nil {
			return fmt.Errorf("failed to append classification log: %w", err)
		}
	}

	pending, err := e.storage.GetUnresolved(ctx, statementID)
	if err != nil {
		return fmt.Errorf("failed to count pending transactions: %w", err)
	}
	metrics.Pending = len(pending)
	return nil
}

// runFixedStages applies regex then heuristics to every unresolved
// transaction. A transaction the regex stage resolves is not shown to the
// heuristic stage in the same pass.
func (e *Engine) runFixedStages(ctx context.Context, statementID string, metrics *FileMetrics, logs *[]model.LogEntry) error {
	txns, err := e.storage.GetUnresolved(ctx, statementID)
	if err != nil {
		return fmt.Errorf("failed to fetch unresolved transactions: %w", err)
	}

	for i := range txns {
		if err := ctx.Err(); err != nil {
			return err
		}
		txn := &txns[i]

		metrics.Regex.Attempted++
		result := e.regex(txn.Description)
		*logs = append(*logs, newLogEntry(txn.ID, model.SourceRegex, result))
		if result.Resolved() {
			if err := e.storage.ApplyClassification(ctx, txn.ID, result, model.SourceRegex); err != nil {
				return fmt.Errorf("failed to apply regex classification: %w", err)
			}
			metrics.Regex.Classified++
			continue
		}

		metrics.Heuristic.Attempted++
		result = e.heuristic(txn.Description)
		*logs = append(*logs, newLogEntry(txn.ID, model.SourceHeuristic, result))
		if result.Resolved() {
			if err := e.storage.ApplyClassification(ctx, txn.ID, result, model.SourceHeuristic); err != nil {
				return fmt.Errorf("failed to apply heuristic classification: %w", err)
			}
			metrics.Heuristic.Classified++
		}
	}
	return nil
}

// runEmbeddingStage reclassifies everything still unresolved plus low
// confidence regex/heuristic results.
func (e *Engine) runEmbeddingStage(ctx context.Context, statementID string, metrics *FileMetrics, logs *[]model.LogEntry) error {
	txns, err := e.storage.GetForEmbedding(ctx, statementID, e.config.EmbeddingLowConf)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions for embedding stage: %w", err)
	}

	for i := range txns {
		if err := ctx.Err(); err != nil {
			return err
		}
		txn := &txns[i]

		metrics.Embedding.Attempted++
		result := e.embedding(txn.Description)
		*logs = append(*logs, newLogEntry(txn.ID, model.SourceBert, result))
		if result.Resolved() {
			if err := e.storage.ApplyClassification(ctx, txn.ID, result, model.SourceBert); err != nil {
				return fmt.Errorf("failed to apply embedding classification: %w", err)
			}
			metrics.Embedding.Classified++
		}
	}
	return nil
}

// runLLMStage batches the leftovers to the LLM. Unresolved answers are
// written back as PENDING so the transaction's terminal state is explicit.
func (e *Engine) runLLMStage(ctx context.Context, statementID string, metrics *FileMetrics, logs *[]model.LogEntry) error {
	if e.llm == nil {
		return nil
	}

	txns, err := e.storage.GetForLLM(ctx, statementID, e.config.LLMFallbackConf)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions for LLM stage: %w", err)
	}

	for offset := 0; offset < len(txns); offset += e.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := offset + e.config.BatchSize
		if end > len(txns) {
			end = len(txns)
		}
		batch := txns[offset:end]

		descriptions := make([]string, len(batch))
		for i, txn := range batch {
			descriptions[i] = txn.Description
		}

		results := e.llm.ClassifyBatch(ctx, descriptions)
		for i, txn := range batch {
			metrics.LLM.Attempted++
			result := results[i]
			*logs = append(*logs, newLogEntry(txn.ID, model.SourceLLM, result))
			if result.Resolved() {
				metrics.LLM.Classified++
			}
			if err := e.storage.ApplyClassification(ctx, txn.ID, result, model.SourceLLM); err != nil {
				return fmt.Errorf("failed to apply LLM classification: %w", err)
			}
		}
	}
	return nil
}

func newLogEntry(txnID string, stage model.Source, result model.ClassificationResult) model.LogEntry {
	return model.LogEntry{
		ID:         uuid.NewString(),
		TxnID:      txnID,
		Stage:      stage,
		Prediction: result.Prediction(),
		Confidence: result.Confidence,
		Meta:       result.Meta,
		CreatedAt:  time.Now().UTC(),
	}
}
