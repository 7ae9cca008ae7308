package analyzer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gnana997/brandlint/pkg/scanner"
)

// WatchOptions configures the re-analysis watcher.
type WatchOptions struct {
	// DebounceMs groups rapid changes so editors that write in bursts
	// trigger one re-analysis instead of many.
	DebounceMs int
}

// DefaultWatchOptions returns the default watch configuration.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// Watcher re-runs project analysis whenever a style file under the
// watched root changes, and delivers each fresh report to a callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	analyzer *Analyzer
	onReport func(*ProjectReport)
	options  WatchOptions
	log      *slog.Logger

	root string

	debounceMu    sync.Mutex
	debounceTimer *time.Timer

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher that feeds reports to onReport.
func NewWatcher(a *Analyzer, options WatchOptions, onReport func(*ProjectReport), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = DefaultWatchOptions().DebounceMs
	}
	return &Watcher{
		watcher:  w,
		analyzer: a,
		onReport: onReport,
		options:  options,
		log:      logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching rootPath and runs one initial analysis.
func (w *Watcher) Start(rootPath string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.root = rootPath
	w.mu.Unlock()

	if err := w.watcher.Add(rootPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", rootPath, err)
	}

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if shouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				w.log.Warn("failed to watch directory", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to setup watches: %w", err)
	}

	w.log.Info("style watcher started", "root", rootPath)

	w.reanalyze()
	go w.eventLoop()

	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.log.Info("style watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("style watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if !scanner.IsStyleFile(name) && !scanner.IsTailwindConfig(name) {
		return
	}

	w.log.Debug("style file event", "op", event.Op.String(), "file", event.Name)

	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0:
		w.debounceReanalyze()
	}
}

// debounceReanalyze schedules a full re-analysis after the debounce
// window. Analysis is whole-project: merged token keys and the mean
// score depend on every file, so per-file incremental updates would
// produce stale aggregates.
func (w *Watcher) debounceReanalyze() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		w.reanalyze,
	)
}

func (w *Watcher) reanalyze() {
	report, err := w.analyzer.AnalyzeDir(w.root)
	if err != nil {
		w.log.Warn("re-analysis failed", "root", w.root, "error", err)
		return
	}
	if w.onReport != nil {
		w.onReport(report)
	}
}

func shouldIgnoreDir(path string) bool {
	switch filepath.Base(path) {
	case "node_modules", ".git", "dist", "build", ".next", ".brandlint":
		return true
	}
	return false
}
