package facility

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dailylog/dailylog/pkg/fileio"
	"github.com/dailylog/dailylog/pkg/logdate"
)

// OpenFunc prepares a newly selected log file before the first write.
type OpenFunc func(ctx context.Context, path string) error

// RotationConfig configures a Rotation.
type RotationConfig struct {
	// Folder is the directory daily files live in.
	Folder string

	// Extension is appended to the encoded date, including the dot.
	Extension string

	Codec    logdate.Codec
	Store    fileio.Store
	Notifier fileio.Notifier

	// Open runs once per distinct file, before the file becomes current.
	// May be nil.
	Open OpenFunc
}

// Rotation tracks the current daily log file of a facility.
type Rotation struct {
	folder    string
	extension string
	codec     logdate.Codec
	separator string
	notifier  fileio.Notifier
	open      OpenFunc

	mu      sync.Mutex
	current string
}

// NewRotation creates a Rotation with no current file.
func NewRotation(cfg RotationConfig) *Rotation {
	sep := string(cfg.Store.Separator())
	return &Rotation{
		folder:    strings.TrimRight(cfg.Folder, sep),
		extension: cfg.Extension,
		codec:     cfg.Codec,
		separator: sep,
		notifier:  cfg.Notifier,
		open:      cfg.Open,
	}
}

// PathFor returns the file events logged at now belong to.
func (r *Rotation) PathFor(now time.Time) string {
	return r.folder + r.separator + r.codec.Encode(logdate.FromTime(now)) + r.extension
}

// Resolve returns the file to write an event logged at now to, switching
// files when the date changed.
//
// Switching notifies the previous file as closed, runs the open step and
// notifies the new file as opened, all while holding the rotation lock.
// Concurrent callers wait and then see the new file, so the open step runs
// once per file. When the open step fails the current file is left
// unchanged and the error is returned.
func (r *Rotation) Resolve(ctx context.Context, now time.Time) (string, error) {
	target := r.PathFor(now)

	r.mu.Lock()
	defer r.mu.Unlock()

	if target == r.current {
		return target, nil
	}

	if r.current != "" && r.notifier != nil {
		r.notifier.OnLogFileClosed(r.current)
	}
	r.current = ""

	if r.open != nil {
		if err := r.open(ctx, target); err != nil {
			return target, err
		}
	}

	r.current = target
	if r.notifier != nil {
		r.notifier.OnLogFileOpened(target)
	}
	return target, nil
}

// Current returns the current file, or "" before the first event.
func (r *Rotation) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Forget drops path as the current file so the next event runs the open
// step again. It is used after the file has been deleted.
func (r *Rotation) Forget(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == path {
		r.current = ""
	}
}

// Close notifies the current file as closed and clears it.
func (r *Rotation) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != "" && r.notifier != nil {
		r.notifier.OnLogFileClosed(r.current)
	}
	r.current = ""
}
