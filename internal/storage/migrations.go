package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS documents (
					doc_id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					bank TEXT NOT NULL,
					file_path TEXT NOT NULL,
					original_filename TEXT NOT NULL,
					status TEXT NOT NULL DEFAULT 'uploaded',
					upload_time DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX IF NOT EXISTS idx_documents_owner_file ON documents(user_id, original_filename)`,

				`CREATE TABLE IF NOT EXISTS statements (
					statement_id TEXT PRIMARY KEY,
					doc_id TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (doc_id) REFERENCES documents(doc_id)
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					txn_id TEXT PRIMARY KEY,
					statement_id TEXT NOT NULL,
					user_id TEXT NOT NULL,
					txn_date DATETIME NOT NULL,
					description TEXT NOT NULL,
					amount TEXT NOT NULL,
					vendor TEXT NOT NULL DEFAULT '',
					category TEXT NOT NULL DEFAULT '',
					subcategory TEXT NOT NULL DEFAULT '',
					confidence REAL NOT NULL DEFAULT 0,
					classification_source TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (statement_id) REFERENCES statements(statement_id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_statement ON transactions(statement_id)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)`,

				`CREATE TABLE IF NOT EXISTS classification_log (
					log_id TEXT PRIMARY KEY,
					txn_id TEXT NOT NULL,
					stage TEXT NOT NULL,
					prediction TEXT NOT NULL,
					confidence REAL NOT NULL DEFAULT 0,
					meta TEXT NOT NULL DEFAULT '{}',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (txn_id) REFERENCES transactions(txn_id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_classification_log_txn ON classification_log(txn_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute %q: %w", query[:40], err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the schema up to the latest version. Applied versions are
// tracked in schema_migrations, so running it repeatedly is safe.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`, m.Version, m.Description); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("Applied migration", "version", m.Version, "description", m.Description)
	}
	return nil
}
