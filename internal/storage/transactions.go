package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// unresolvedPredicate selects transactions no stage has given a real category.
const unresolvedPredicate = `(category = '' OR category = 'PENDING')`

// InsertTransactions persists a batch of transactions for one statement and
// returns the assigned ids. Ids are assigned here, not by the parser, so a
// re-parsed file never collides with its previous rows.
func (s *SQLiteStorage) InsertTransactions(ctx context.Context, txns []model.Transaction) ([]string, error) {
	if len(txns) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (txn_id, statement_id, user_id, txn_date, description, amount, vendor, category, subcategory, confidence, classification_source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	ids := make([]string, len(txns))
	for i, txn := range txns {
		if err := validateTransaction(&txn); err != nil {
			return nil, fmt.Errorf("transaction at index %d: %w", i, err)
		}
		id := txn.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx,
			id, txn.StatementID, txn.OwnerID, txn.Date.UTC(), txn.Description,
			txn.Amount.String(), txn.Vendor, txn.Category, txn.Subcategory,
			txn.Confidence, string(txn.Source)); err != nil {
			return nil, fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
		ids[i] = id
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transactions: %w", err)
	}
	return ids, nil
}

// GetUnresolved returns transactions with no category or category PENDING.
func (s *SQLiteStorage) GetUnresolved(ctx context.Context, statementID string) ([]model.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT txn_id, statement_id, user_id, txn_date, description, amount, vendor, category, subcategory, confidence, classification_source
		FROM transactions
		WHERE statement_id = ? AND `+unresolvedPredicate+`
		ORDER BY txn_date, txn_id`,
		statementID)
}

// GetForEmbedding returns transactions matching the embedding stage's
// selection predicate: unresolved, or a regex/heuristic result below lowConf.
func (s *SQLiteStorage) GetForEmbedding(ctx context.Context, statementID string, lowConf float64) ([]model.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT txn_id, statement_id, user_id, txn_date, description, amount, vendor, category, subcategory, confidence, classification_source
		FROM transactions
		WHERE statement_id = ?
		  AND (`+unresolvedPredicate+`
		       OR (classification_source IN ('regex', 'heuristic') AND confidence < ?))
		ORDER BY txn_date, txn_id`,
		statementID, lowConf)
}

// GetForLLM returns transactions matching the LLM stage's selection
// predicate: still unresolved, or an embedding result below lowConf.
func (s *SQLiteStorage) GetForLLM(ctx context.Context, statementID string, lowConf float64) ([]model.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT txn_id, statement_id, user_id, txn_date, description, amount, vendor, category, subcategory, confidence, classification_source
		FROM transactions
		WHERE statement_id = ?
		  AND (`+unresolvedPredicate+`
		       OR (classification_source = 'bert' AND confidence < ?))
		ORDER BY txn_date, txn_id`,
		statementID, lowConf)
}

// ApplyClassification writes one stage's verdict onto a transaction.
func (s *SQLiteStorage) ApplyClassification(ctx context.Context, txnID string, result model.ClassificationResult, source model.Source) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET category = ?, subcategory = ?, vendor = ?, confidence = ?, classification_source = ?
		WHERE txn_id = ?`,
		result.Category, result.Subcategory, result.Vendor, result.Confidence, string(source), txnID)
	if err != nil {
		return fmt.Errorf("failed to apply classification to %s: %w", txnID, err)
	}
	return nil
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var (
		txn    model.Transaction
		date   time.Time
		amount string
		source string
	)
	if err := rows.Scan(&txn.ID, &txn.StatementID, &txn.OwnerID, &date, &txn.Description,
		&amount, &txn.Vendor, &txn.Category, &txn.Subcategory, &txn.Confidence, &source); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("corrupt amount %q on %s: %w", amount, txn.ID, err)
	}
	txn.Date = date
	txn.Amount = dec
	txn.Source = model.Source(source)
	return txn, nil
}
