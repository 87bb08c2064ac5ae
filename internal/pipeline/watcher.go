package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors root directories for changes to files the filter admits
// and triggers a callback, debounced so editor save bursts collapse into one
// rerun.
type Watcher struct {
	roots  []string
	filter Filter
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a watcher over the given roots.
func NewWatcher(roots []string, filter Filter, logger *slog.Logger) *Watcher {
	return &Watcher{
		roots:      roots,
		filter:     filter,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch blocks until the context is cancelled, invoking callback with the
// display path of each relevant change.
func (w *Watcher) Watch(ctx context.Context, callback func(display string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range w.roots {
		if _, sErr := os.Stat(root); os.IsNotExist(sErr) {
			continue
		}
		if err := w.addRecursive(watcher, root); err != nil {
			return &DiscoveryError{Root: root, Wrapped: err}
		}
	}

	w.logger.Info("Watching for changes", "roots", strings.Join(w.roots, ", "))
	if w.Ready != nil {
		close(w.Ready)
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if display, relevant := w.handleEvent(watcher, event); relevant {
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDuration, func() {
					callback(display)
				})
			}
		}
	}
}

// handleEvent processes a single fsnotify event. New directories are added to
// the watch set; writes and creations of admitted files are relevant.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return "", false
		}
	}

	return w.mapToDisplay(event.Name)
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// mapToDisplay maps an event path to a display path if some root contains it
// and the filter admits it.
func (w *Watcher) mapToDisplay(path string) (string, bool) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return "", false
	}
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if w.filter.Match(rel) {
			return displayPath(root, rel), true
		}
	}
	return "", false
}
