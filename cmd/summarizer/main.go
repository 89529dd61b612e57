package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"deck-summarizer/internal/app"
	"deck-summarizer/internal/deck"
	"deck-summarizer/internal/report"
	"deck-summarizer/internal/summarizer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <presentation.pptx>\n", os.Args[0])
		os.Exit(2)
	}

	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Cache.Close()

	if err := run(context.Background(), deps, os.Args[1]); err != nil {
		deps.Log.Error("summarization failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, deps app.Deps, path string) error {
	start := time.Now()

	d, err := deck.Open(path)
	if err != nil {
		return err
	}
	deps.Log.Info("processing presentation", "path", path, "slides", len(d.Slides))

	s := summarizer.New(deps.LLM, deps.Cache, deps.Log, summarizer.Options{
		Model:         deps.Config.LLMModel,
		MaxAttempts:   deps.Config.MaxAttempts,
		RetryBase:     deps.Config.RetryBase,
		MaxConcurrent: deps.Config.MaxConcurrent,
		CacheTTL:      deps.Config.CacheTTL,
	})
	results := s.SummarizeAll(ctx, d.Slides, summarizer.DefaultSeed)

	rep := report.New(results, time.Since(start))
	out := report.OutputPath(path)
	if err := report.Write(out, rep, deps.Config.OutputFormat); err != nil {
		return err
	}

	deps.Log.Info("presentation summarized",
		"run_id", rep.RunID,
		"output", out,
		"slides", len(rep.Results),
		"elapsed", rep.Elapsed.Round(10*time.Millisecond).String(),
	)
	return nil
}
