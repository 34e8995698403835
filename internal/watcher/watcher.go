// Package watcher re-evaluates a local word list whenever the files backing
// it change on disk.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/alucardeht/wordcount/internal/logger"
)

var log = logger.ForComponent("watcher")

// Target is the set of files being watched.
type Target interface {
	Pattern() string
	Matches(path string) bool
}

// ChangeFunc is called from the Run goroutine, one batch at a time.
type ChangeFunc func(ctx context.Context, events []FileEvent)

type Watcher struct {
	config    WatcherConfig
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	target    Target
	onChange  ChangeFunc
}

func New(config WatcherConfig, target Target, onChange ChangeFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		config:    config,
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(config.DebounceWindow, config.MaxBatchSize),
		target:    target,
		onChange:  onChange,
	}, nil
}

// Root is the deepest directory that contains every file the pattern can
// match.
func Root(pattern string) string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return filepath.FromSlash(base)
}

// recursive reports whether the pattern can match files below the root
// directory's immediate children.
func (w *Watcher) recursive() bool {
	_, rest := doublestar.SplitPattern(filepath.ToSlash(w.target.Pattern()))
	return strings.Contains(rest, "**") || strings.Contains(rest, "/")
}

// watchRoot registers the root directory, and its subdirectories only when
// the pattern reaches into them.
func (w *Watcher) watchRoot() error {
	root := Root(w.target.Pattern())
	if w.recursive() {
		return w.addTree(root)
	}
	return w.fsWatcher.Add(root)
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsWatcher.Add(path); err != nil {
			log.Debug("failed to watch directory", "path", path, "error", err)
			return nil
		}
		log.Debug("watching directory", "path", path)
		return nil
	})
}

// Run blocks until ctx is done. It always closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()
	defer w.debouncer.Stop()

	log.Info("starting file watcher", "root", Root(w.target.Pattern()), "pattern", w.target.Pattern())
	if err := w.watchRoot(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping file watcher")
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			log.Debug("file event", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && w.recursive() {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(event.Name)
					continue
				}
			}

			if fileEvent := w.convertEvent(event); fileEvent != nil {
				w.debouncer.Add(*fileEvent)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error", "error", err)

		case batch := <-w.debouncer.C():
			log.Info("word list changed", "files", len(batch))
			w.onChange(ctx, batch)
		}
	}
}

func (w *Watcher) convertEvent(event fsnotify.Event) *FileEvent {
	if !w.target.Matches(event.Name) {
		return nil
	}

	var eventType EventType

	switch {
	case event.Has(fsnotify.Create):
		eventType = EventCreate
	case event.Has(fsnotify.Write):
		eventType = EventModify
	case event.Has(fsnotify.Remove):
		eventType = EventDelete
	case event.Has(fsnotify.Rename):
		eventType = EventRename
	default:
		return nil
	}

	return &FileEvent{
		Path:      event.Name,
		Type:      eventType,
		Timestamp: time.Now(),
	}
}
