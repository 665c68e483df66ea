package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SREEDEEP-DEY/SpendSight/internal/common"
	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedStatement(t *testing.T, s *SQLiteStorage) (docID, statementID string) {
	t.Helper()
	docID, statementID, err := s.CreateDocumentAndStatement(context.Background(), "owner-1", "BOB", "/tmp/stmt.pdf", "stmt.pdf")
	require.NoError(t, err)
	return docID, statementID
}

func seedTransactions(t *testing.T, s *SQLiteStorage, statementID string, descriptions ...string) []string {
	t.Helper()
	txns := make([]model.Transaction, len(descriptions))
	for i, desc := range descriptions {
		txns[i] = model.Transaction{
			StatementID: statementID,
			OwnerID:     "owner-1",
			Date:        time.Date(2024, 2, 1+i, 0, 0, 0, 0, time.UTC),
			Description: desc,
			Amount:      decimal.NewFromFloat(-450.50),
		}
	}
	ids, err := s.InsertTransactions(context.Background(), txns)
	require.NoError(t, err)
	require.Len(t, ids, len(descriptions))
	return ids
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Migrate(context.Background()))
}

func TestNewSQLiteStorageEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestFindStatement(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.FindStatement(ctx, "owner-1", "stmt.pdf")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, statementID := seedStatement(t, s)

	found, err := s.FindStatement(ctx, "owner-1", "stmt.pdf")
	require.NoError(t, err)
	assert.Equal(t, statementID, found)

	_, err = s.FindStatement(ctx, "owner-2", "stmt.pdf")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateDocumentStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	docID, _ := seedStatement(t, s)

	require.NoError(t, s.UpdateDocumentStatus(ctx, docID, "parsed"))

	var status string
	require.NoError(t, s.db.QueryRow(`SELECT status FROM documents WHERE doc_id = ?`, docID).Scan(&status))
	assert.Equal(t, "parsed", status)

	err := s.UpdateDocumentStatus(ctx, "no-such-doc", "parsed")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsertAndFetchTransactions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	_, statementID := seedStatement(t, s)

	ids := seedTransactions(t, s, statementID, "UPI/DR/4001/ZOMATO", "SALARY CREDIT FEB 2024")

	unresolved, err := s.GetUnresolved(ctx, statementID)
	require.NoError(t, err)
	require.Len(t, unresolved, 2)

	assert.Equal(t, ids[0], unresolved[0].ID)
	assert.Equal(t, "UPI/DR/4001/ZOMATO", unresolved[0].Description)
	assert.True(t, unresolved[0].Amount.Equal(decimal.NewFromFloat(-450.50)), "amount must round-trip exactly")
	assert.Equal(t, model.SourceNone, unresolved[0].Source)
}

func TestInsertTransactionsValidation(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.InsertTransactions(context.Background(), []model.Transaction{{
		StatementID: "stmt-1",
		Description: "missing date",
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransaction)
}

func TestStageSelectionPredicates(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	_, statementID := seedStatement(t, s)

	ids := seedTransactions(t, s, statementID,
		"resolved high",   // regex, conf 0.9
		"resolved low",    // regex, conf 0.4
		"bert low",        // bert, conf 0.2
		"bert ok",         // bert, conf 0.6
		"still pending",   // applied PENDING by the llm stage
		"never attempted", // untouched
	)

	apply := func(id, category string, conf float64, source model.Source) {
		var result model.ClassificationResult
		if category == model.Pending {
			result = model.PendingResult("x", conf, nil)
		} else {
			result = model.Resolved(category, "Sub", "", conf, nil)
		}
		require.NoError(t, s.ApplyClassification(ctx, id, result, source))
	}

	apply(ids[0], "Dining", 0.9, model.SourceRegex)
	apply(ids[1], "Transport", 0.4, model.SourceRegex)
	apply(ids[2], "Home", 0.2, model.SourceBert)
	apply(ids[3], "Bills", 0.6, model.SourceBert)
	apply(ids[4], model.Pending, 0.0, model.SourceLLM)

	unresolved, err := s.GetUnresolved(ctx, statementID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ids[4], ids[5]}, txnIDs(unresolved))

	embedding, err := s.GetForEmbedding(ctx, statementID, 0.50)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ids[1], ids[4], ids[5]}, txnIDs(embedding))

	llm, err := s.GetForLLM(ctx, statementID, 0.25)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ids[2], ids[4], ids[5]}, txnIDs(llm))
}

func txnIDs(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, txn := range txns {
		out[i] = txn.ID
	}
	return out
}

func TestApplyClassificationUpdatesFields(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	_, statementID := seedStatement(t, s)
	ids := seedTransactions(t, s, statementID, "UPI/DR/4001/ZOMATO")

	result := model.Resolved("Dining", "FoodDelivery", "zomato", 0.90, nil)
	require.NoError(t, s.ApplyClassification(ctx, ids[0], result, model.SourceRegex))

	unresolved, err := s.GetUnresolved(ctx, statementID)
	require.NoError(t, err)
	assert.Empty(t, unresolved)

	all, err := s.GetForEmbedding(ctx, statementID, 1.1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Dining", all[0].Category)
	assert.Equal(t, "FoodDelivery", all[0].Subcategory)
	assert.Equal(t, "zomato", all[0].Vendor)
	assert.Equal(t, model.SourceRegex, all[0].Source)
}

func TestAppendLogs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	_, statementID := seedStatement(t, s)
	ids := seedTransactions(t, s, statementID, "first", "second")

	entries := []model.LogEntry{
		{TxnID: ids[0], Stage: model.SourceRegex, Prediction: "Dining.FoodDelivery", Confidence: 0.9, Meta: map[string]any{"matched_rule": "zomato"}},
		{TxnID: ids[1], Stage: model.SourceRegex, Prediction: model.Pending, Confidence: 0, Meta: nil},
	}
	require.NoError(t, s.AppendLogs(ctx, entries))
	require.NoError(t, s.AppendLogs(ctx, nil))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM classification_log`).Scan(&count))
	assert.Equal(t, 2, count)

	var meta string
	require.NoError(t, s.db.QueryRow(`SELECT meta FROM classification_log WHERE txn_id = ?`, ids[1]).Scan(&meta))
	assert.Equal(t, "{}", meta)

	require.NoError(t, s.AppendLog(ctx, model.LogEntry{
		TxnID: ids[0], Stage: model.SourceLLM, Prediction: model.Pending, Confidence: 0,
	}))
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM classification_log`).Scan(&count))
	assert.Equal(t, 3, count)
}

func TestAppendLogsFallbackSkipsBadRows(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	seedStatement(t, s)

	// txn_id has a foreign key constraint, so these rows fail both the bulk
	// insert and the per-row fallback. AppendLogs still returns nil.
	entries := []model.LogEntry{
		{TxnID: "ghost-txn", Stage: model.SourceRegex, Prediction: model.Pending},
	}
	require.NoError(t, s.AppendLogs(ctx, entries))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM classification_log`).Scan(&count))
	assert.Equal(t, 0, count)
}
