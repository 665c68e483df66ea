package engine

import (
	"context"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
	"github.com/SREEDEEP-DEY/SpendSight/internal/parser"
)

// StatementParser extracts raw transaction rows from a statement file.
type StatementParser interface {
	Parse(ctx context.Context, filepath string) (bank string, rows []parser.RawRow, err error)
}

// StageFunc is a single-transaction classifier stage. Stages never return
// errors; an input they cannot place comes back as a PENDING result.
type StageFunc func(description string) model.ClassificationResult

// BatchClassifier is the LLM stage contract. Implementations degrade
// internally: a failed batch returns PENDING results, never an error.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, descriptions []string) []model.ClassificationResult
}
