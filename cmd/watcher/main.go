package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/infrastructure/cache"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/infrastructure/storage"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/extract"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/minutes"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/pipeline"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/summarize"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/transcript"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/watcher"
	pkgai "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/ai"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/executor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	for _, dir := range []string{cfg.Watcher.InputDir, cfg.Watcher.OutputDir, cfg.Storage.ScratchDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("failed to create directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	store, err := storage.NewLocalStore(cfg.Watcher.OutputDir)
	if err != nil {
		logger.Fatal("failed to initialize output store", zap.Error(err))
	}

	source := transcript.NewSource(
		pkgai.NewAssemblyAIClient(&cfg.Transcriber, logger),
		executor.New(),
		cfg.Transcriber.FFmpegBinaryPath,
		cfg.Storage.ScratchDir,
		cfg.Transcriber.ModelSize,
		logger,
	)
	adapter := summarize.NewAdapter(
		pkgai.NewSummarizerClient(&cfg.Summarizer),
		cache.NewWarm(),
		cfg.Summarizer.MaxInputRunes,
		cfg.Summarizer.TruncateLongInput,
		logger,
	)
	extractor := extract.NewExtractor(pkgai.NewAnalyzerClient(&cfg.Analyzer), logger)
	pipe := pipeline.New(source, adapter, extractor, logger)

	participants := minutes.SplitParticipants(cfg.Watcher.Participants)
	params := summarize.Params{
		Model:     cfg.Pipeline.DefaultModel,
		MaxLength: cfg.Pipeline.DefaultMaxLength,
		MinLength: cfg.Pipeline.DefaultMinLength,
	}

	handle := func(ctx context.Context, filePath string) error {
		result, err := pipe.Run(ctx, pipeline.Request{
			Input:        transcript.Input{Path: filePath},
			Participants: participants,
			Params:       params,
		})
		if err != nil {
			return err
		}
		if err := store.SaveMinutes(ctx, result.ArtifactName, result.Rendered); err != nil {
			return err
		}
		logger.Info("minutes written",
			zap.String("source", filePath),
			zap.String("artifact", result.ArtifactName),
		)
		return nil
	}

	w, err := watcher.New(cfg.Watcher.InputDir, handle, logger, cfg.Watcher.MaxConcurrent)
	if err != nil {
		logger.Fatal("failed to create watcher", zap.Error(err))
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	logger.Info("minutes watcher ready", zap.String("inbox", cfg.Watcher.InputDir))

	select {
	case sig := <-sigChan:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	case err := <-errChan:
		logger.Error("watcher stopped", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}
