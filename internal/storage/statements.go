package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SREEDEEP-DEY/SpendSight/internal/common"
)

// CreateDocumentAndStatement records a new document and its statement in one
// transaction and returns both ids.
func (s *SQLiteStorage) CreateDocumentAndStatement(ctx context.Context, ownerID, bank, filePath, originalFilename string) (string, string, error) {
	if err := validateString(ownerID, "ownerID"); err != nil {
		return "", "", err
	}
	if err := validateString(originalFilename, "originalFilename"); err != nil {
		return "", "", err
	}

	docID := uuid.NewString()
	statementID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (doc_id, user_id, bank, file_path, original_filename) VALUES (?, ?, ?, ?, ?)`,
		docID, ownerID, bank, filePath, originalFilename); err != nil {
		return "", "", fmt.Errorf("failed to insert document: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO statements (statement_id, doc_id) VALUES (?, ?)`,
		statementID, docID); err != nil {
		return "", "", fmt.Errorf("failed to insert statement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", "", fmt.Errorf("failed to commit statement record: %w", err)
	}
	return docID, statementID, nil
}

// UpdateDocumentStatus updates a document's processing status.
func (s *SQLiteStorage) UpdateDocumentStatus(ctx context.Context, docID, status string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE documents SET status = ? WHERE doc_id = ?`, status, docID)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("document %s: %w", docID, common.ErrNotFound)
	}
	return nil
}

// FindStatement returns the most recent statement for (owner, filename), or
// common.ErrNotFound when the file has never been processed.
func (s *SQLiteStorage) FindStatement(ctx context.Context, ownerID, originalFilename string) (string, error) {
	var statementID string
	err := s.db.QueryRowContext(ctx, `
		SELECT s.statement_id
		FROM statements s
		JOIN documents d ON d.doc_id = s.doc_id
		WHERE d.user_id = ? AND d.original_filename = ?
		ORDER BY d.upload_time DESC, s.created_at DESC
		LIMIT 1`,
		ownerID, originalFilename).Scan(&statementID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up statement: %w", err)
	}
	return statementID, nil
}
