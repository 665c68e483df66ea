package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SREEDEEP-DEY/SpendSight/internal/common"
)

// ProgressFunc is called after each file finishes, from worker goroutines.
type ProgressFunc func(path string)

// ProcessFiles runs the cascade over many files with a bounded worker pool.
// One failing or panicking file is quarantined and reported in the run
// metrics; the rest of the run continues. Cancellation is cooperative: an
// in-flight file finishes, queued files are abandoned.
func (e *Engine) ProcessFiles(ctx context.Context, paths []string, ownerID string, progress ProgressFunc) RunMetrics {
	start := time.Now()

	var (
		mu      sync.Mutex
		metrics RunMetrics
	)

	jobs := make(chan string)
	var wg sync.WaitGroup

	workers := e.config.Workers
	if workers > len(paths) {
		workers = len(paths)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				fm, err := e.processFileSafe(ctx, path, ownerID)

				mu.Lock()
				switch {
				case err == nil:
					metrics.Add(fm)
				case errors.Is(err, common.ErrUnsupportedDocument):
					metrics.Skipped++
					e.logger.Warn("Skipping unsupported document", "file", path)
				case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
					// Cancellation is not a file failure.
				default:
					metrics.FailedFiles = append(metrics.FailedFiles, path)
					e.logger.Error("File processing failed", "file", path, "error", err)
				}
				mu.Unlock()

				if progress != nil {
					progress(path)
				}
			}
		}()
	}

dispatch:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	metrics.Duration = time.Since(start)
	return metrics
}

// processFileSafe isolates one file: a panic inside a parser or classifier
// quarantines that file instead of killing the worker pool.
func (e *Engine) processFileSafe(ctx context.Context, path, ownerID string) (fm FileMetrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", path, r)
		}
	}()
	return e.ProcessFile(ctx, path, ownerID)
}
