package engine

import (
	"log/slog"
	"time"
)

// StageMetrics counts one classifier stage's work on one file.
type StageMetrics struct {
	Attempted  int
	Classified int
}

// FileMetrics accumulates counters for a single processed file.
type FileMetrics struct {
	Path      string
	Bank      string
	Inserted  int
	Dropped   int
	Regex     StageMetrics
	Heuristic StageMetrics
	Embedding StageMetrics
	LLM       StageMetrics
	Pending   int
	Rerun     bool
	Duration  time.Duration
}

// RunMetrics aggregates FileMetrics across a whole run.
type RunMetrics struct {
	FailedFiles []string
	Files       int
	Skipped     int
	Inserted    int
	Dropped     int
	Regex       StageMetrics
	Heuristic   StageMetrics
	Embedding   StageMetrics
	LLM         StageMetrics
	Pending     int
	Duration    time.Duration
}

func (s *StageMetrics) add(o StageMetrics) {
	s.Attempted += o.Attempted
	s.Classified += o.Classified
}

// Add folds one file's counters into the run totals.
func (r *RunMetrics) Add(f FileMetrics) {
	r.Files++
	r.Inserted += f.Inserted
	r.Dropped += f.Dropped
	r.Regex.add(f.Regex)
	r.Heuristic.add(f.Heuristic)
	r.Embedding.add(f.Embedding)
	r.LLM.add(f.LLM)
	r.Pending += f.Pending
}

// LogSummary emits the run totals at info level.
func (r *RunMetrics) LogSummary(logger *slog.Logger) {
	logger.Info("Run complete",
		"files", r.Files,
		"skipped", r.Skipped,
		"failed", len(r.FailedFiles),
		"inserted", r.Inserted,
		"dropped_rows", r.Dropped,
		"regex_classified", r.Regex.Classified,
		"heuristic_classified", r.Heuristic.Classified,
		"embedding_classified", r.Embedding.Classified,
		"llm_classified", r.LLM.Classified,
		"pending", r.Pending,
		"duration", r.Duration)
}
