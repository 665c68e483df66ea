package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// AppendLog appends a single classification log entry.
func (s *SQLiteStorage) AppendLog(ctx context.Context, entry model.LogEntry) error {
	id, meta := logFields(entry)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classification_log (log_id, txn_id, stage, prediction, confidence, meta)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, entry.TxnID, string(entry.Stage), entry.Prediction, entry.Confidence, meta)
	if err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return nil
}

// AppendLogs bulk-appends entries in one statement. If the bulk insert is
// rejected it falls back to per-row writes; a row that still fails is logged
// and skipped so one bad entry cannot sink a statement's worth of log.
func (s *SQLiteStorage) AppendLogs(ctx context.Context, entries []model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	placeholders := make([]string, len(entries))
	args := make([]any, 0, len(entries)*6)
	for i, entry := range entries {
		id, meta := logFields(entry)
		placeholders[i] = "(?, ?, ?, ?, ?, ?)"
		args = append(args, id, entry.TxnID, string(entry.Stage), entry.Prediction, entry.Confidence, meta)
	}

	query := `INSERT INTO classification_log (log_id, txn_id, stage, prediction, confidence, meta) VALUES ` +
		strings.Join(placeholders, ", ")
	_, err := s.db.ExecContext(ctx, query, args...)
	if err == nil {
		return nil
	}
	slog.Warn("Bulk log insert failed, falling back to per-row inserts",
		"entries", len(entries), "error", err)

	for _, entry := range entries {
		if err := s.AppendLog(ctx, entry); err != nil {
			slog.Error("Failed to append log entry, skipping",
				"txn_id", entry.TxnID, "stage", entry.Stage, "error", err)
		}
	}
	return nil
}

func logFields(entry model.LogEntry) (id, meta string) {
	id = entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	metaBytes, err := json.Marshal(entry.Meta)
	if err != nil || entry.Meta == nil {
		metaBytes = []byte("{}")
	}
	return id, string(metaBytes)
}
