package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dailylog/dailylog/pkg/logdate"
)

// Watcher reports changes to the log files of a folder.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewWatcher starts watching dir. The caller must call Close.
func NewWatcher(dir string, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return &Watcher{dir: dir, watcher: w, logger: logger}, nil
}

// Run prints one line per create or write of a dated log file until ctx is
// done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if line, ok := describe(event); ok {
				fmt.Fprintln(out, line)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Warn("watch error", "dir", w.dir, "error", err)
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func describe(event fsnotify.Event) (string, bool) {
	if _, ok := logdate.DefaultCodec.Decode(filepath.Base(event.Name)); !ok {
		return "", false
	}
	switch {
	case event.Has(fsnotify.Create):
		return "created " + event.Name, true
	case event.Has(fsnotify.Write):
		return "written " + event.Name, true
	default:
		return "", false
	}
}
