package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventHandler processes one newly arrived meeting file
type EventHandler func(ctx context.Context, filePath string) error

// Watcher monitors an inbox directory and runs the minutes pipeline for
// every meeting file dropped into it
type Watcher struct {
	inputDir      string
	handler       EventHandler
	logger        *zap.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, logger *zap.Logger, maxConcurrent int) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(inputDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &Watcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        logger,
		watcher:       fsWatcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}

// Start begins monitoring the inbox for new meeting files. Each file runs
// through its own pipeline invocation; invocations never share scratch state.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info("inbox watcher started",
		zap.String("input_dir", w.inputDir),
		zap.Int("max_concurrent", w.maxConcurrent),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("waiting for ongoing invocations to complete")
			w.wg.Wait()
			w.logger.Info("inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isMeetingFile(event.Name) {
				w.logger.Debug("ignoring unsupported file", zap.String("path", event.Name))
				continue
			}

			w.logger.Info("new meeting file detected", zap.String("path", event.Name))

			// Small delay to ensure file is fully written
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error("failed to process meeting file",
							zap.String("path", filePath),
							zap.Error(err),
						)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watcher error", zap.Error(err))
		}
	}
}

// Stop closes the file watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// isMeetingFile checks if the file has a supported meeting record extension
func isMeetingFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".wav", ".mp3":
		return true
	default:
		return false
	}
}
