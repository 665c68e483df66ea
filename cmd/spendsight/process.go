package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SREEDEEP-DEY/SpendSight/internal/embedding"
	"github.com/SREEDEEP-DEY/SpendSight/internal/engine"
	"github.com/SREEDEEP-DEY/SpendSight/internal/heuristics"
	"github.com/SREEDEEP-DEY/SpendSight/internal/llm"
	"github.com/SREEDEEP-DEY/SpendSight/internal/parser"
	"github.com/SREEDEEP-DEY/SpendSight/internal/rules"
	"github.com/SREEDEEP-DEY/SpendSight/internal/storage"
)

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [files or directories...]",
		Short: "Parse statement PDFs and classify their transactions",
		Long: `Parse one or more bank statement PDFs, insert their transactions, and run
the classification cascade. Directories are expanded to the PDF files they
contain. Already-processed files are re-classified, not re-inserted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runProcess,
	}

	cmd.Flags().String("owner", "local", "Owner id the statements belong to")
	cmd.Flags().Int("workers", 0, "Number of concurrent file workers (default from config)")

	_ = viper.BindPFlag("owner", cmd.Flags().Lookup("owner"))

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	paths, err := collectPDFs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF files found in %s", strings.Join(args, ", "))
	}

	dbPath, err := databasePath()
	if err != nil {
		return err
	}
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	cfg := engine.Config{
		Workers:          viper.GetInt("workers"),
		BatchSize:        viper.GetInt("llm.batch_size"),
		EmbeddingLowConf: viper.GetFloat64("thresholds.embedding_low_conf"),
		LLMFallbackConf:  viper.GetFloat64("thresholds.llm_fallback"),
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Workers = workers
	}

	embedder := embedding.NewHashingEmbedder(viper.GetInt("embedding.dim"))
	embedClassifier := embedding.New(embedder, embedding.DefaultTaxonomy, heuristics.Classify)

	llmStage, closeLLM, err := buildLLMStage()
	if err != nil {
		return err
	}
	defer closeLLM()

	eng := engine.New(store, parser.NewPDFParser(),
		rules.Classify, heuristics.Classify, embedClassifier.Classify,
		llmStage, cfg, slog.Default())

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Processing statements..."),
	)

	metrics := eng.ProcessFiles(ctx, paths, viper.GetString("owner"), func(string) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	metrics.LogSummary(slog.Default())

	if len(metrics.FailedFiles) > 0 {
		return fmt.Errorf("%d of %d files failed: %s",
			len(metrics.FailedFiles), len(paths), strings.Join(metrics.FailedFiles, ", "))
	}
	return ctx.Err()
}

// buildLLMStage wires the LLM stage when an API key is configured. Without a
// key the cascade still runs; leftovers stay pending for a later run.
func buildLLMStage() (engine.BatchClassifier, func(), error) {
	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		slog.Warn("No LLM API key configured, the LLM stage is disabled")
		return nil, func() {}, nil
	}

	classifier, err := llm.NewClassifier(llm.Config{
		Provider:   viper.GetString("llm.provider"),
		APIKey:     apiKey,
		Model:      viper.GetString("llm.model"),
		MaxRetries: viper.GetInt("llm.max_retries"),
		RetryDelay: viper.GetDuration("llm.backoff_base"),
		RateLimit:  viper.GetInt("llm.rate_limit"),
	}, slog.Default())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM classifier: %w", err)
	}
	return classifier, classifier.Close, nil
}

// collectPDFs expands the argument list: files pass through, directories
// contribute their PDF entries (non-recursive), everything sorted.
func collectPDFs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}
