package facility

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dailylog/dailylog/pkg/fileio"
	"github.com/dailylog/dailylog/pkg/log"
	"github.com/dailylog/dailylog/pkg/logdate"
)

// dailyFiles is the machinery shared by the file based facilities: folder
// management, rotation, scheduling and failure reporting.
type dailyFiles struct {
	kind     string
	opts     options
	folder   string
	store    *fileio.FolderStore
	rotation *Rotation

	ctx    context.Context
	cancel context.CancelFunc

	// mu orders scheduling against Close: events are scheduled under the
	// read lock, closed is flipped under the write lock.
	mu     sync.RWMutex
	closed atomic.Bool
	// stopped is set once pending writes are done and the rotation is closed.
	stopped atomic.Bool
}

// writeFunc writes one event to path. now is the time the event is logged at.
type writeFunc func(ctx context.Context, path string, now time.Time) error

func newDailyFiles(kind, folder, extension string, open func(d *dailyFiles) OpenFunc, opts []Option) (*dailyFiles, error) {
	o := applyOptions(DefaultMinimumLevel, opts)

	if strings.TrimSpace(folder) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidFolder)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if !o.store.MakeDirectories(ctx, folder) {
		cancel()
		if o.notifier != nil {
			o.notifier.OnLogFolderInvalid(folder)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidFolder, folder)
	}

	d := &dailyFiles{
		kind:   kind,
		opts:   o,
		folder: folder,
		store:  fileio.NewFolderStore(folder, o.store, o.notifier),
		ctx:    ctx,
		cancel: cancel,
	}

	var openFn OpenFunc
	if open != nil {
		openFn = open(d)
	}
	d.rotation = NewRotation(RotationConfig{
		Folder:    folder,
		Extension: extension,
		Codec:     o.codec,
		Store:     o.store,
		Notifier:  o.notifier,
		Open:      openFn,
	})
	return d, nil
}

// Enabled reports whether the facility still accepts events.
func (d *dailyFiles) Enabled() bool {
	return !d.closed.Load()
}

// MinimumLevel returns the least severe level that is written.
func (d *dailyFiles) MinimumLevel() log.Level {
	return d.opts.minimum
}

// Folder returns the base folder.
func (d *dailyFiles) Folder() string {
	return d.folder
}

// CurrentFile returns the file events are currently written to, or "" if
// nothing has been written yet.
func (d *dailyFiles) CurrentFile() string {
	return d.rotation.Current()
}

// Files returns every file in the base folder.
func (d *dailyFiles) Files(ctx context.Context) ([]string, error) {
	return d.store.Files(ctx, d.folder)
}

// FilesAfter returns the files in the base folder dated strictly after date.
func (d *dailyFiles) FilesAfter(ctx context.Context, date logdate.Date) ([]string, error) {
	return d.store.FilesAfter(ctx, d.folder, date)
}

// Delete removes the file called name from the base folder.
func (d *dailyFiles) Delete(ctx context.Context, name string) error {
	return d.DeleteAbsolute(ctx, d.folder+string(d.store.Separator())+name)
}

// DeleteAbsolute removes the file at path.
func (d *dailyFiles) DeleteAbsolute(ctx context.Context, path string) error {
	if err := d.store.Delete(ctx, path); err != nil {
		return err
	}
	d.rotation.Forget(path)
	return nil
}

// Flush waits until every scheduled write has finished. It returns the
// first panic recovered from a write, if any.
func (d *dailyFiles) Flush() error {
	return d.opts.scope.Wait()
}

// Close stops accepting events, waits for pending writes and notifies the
// current file as closed. Close is safe to call multiple times.
func (d *dailyFiles) Close() error {
	d.mu.Lock()
	wasClosed := d.closed.Swap(true)
	d.mu.Unlock()
	if wasClosed {
		return nil
	}

	err := d.Flush()
	d.stopped.Store(true)
	d.rotation.Close()
	d.cancel()
	return err
}

func (d *dailyFiles) accepts(level log.Level) bool {
	return !d.closed.Load() && level.AtLeast(d.opts.minimum)
}

// schedule runs write on the scope if level passes the minimum. Failures are
// logged and reported, never returned.
func (d *dailyFiles) schedule(level log.Level, write writeFunc) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.accepts(level) {
		return
	}

	d.opts.scope.Go(func() {
		if d.stopped.Load() {
			return
		}
		now := d.opts.clock()

		path, err := d.rotation.Resolve(d.ctx, now)
		if err != nil {
			d.fail(path, "open log file", err)
			return
		}
		if err := write(d.ctx, path, now); err != nil {
			d.fail(path, "write log event", err)
		}
	})
}

func (d *dailyFiles) fail(path, op string, err error) {
	if d.opts.logger != nil {
		d.opts.logger.Warn("dropped log event",
			"facility", d.kind,
			"op", op,
			"path", path,
			"error", err,
		)
	}
	if fn, ok := d.opts.notifier.(fileio.FailureNotifier); ok {
		fn.OnWriteFailed(path, err)
	}
}

// timestamp renders now in UTC as "YYYY-MM-DD HH:MM:SS".
func timestamp(now time.Time) string {
	return now.UTC().Format(time.DateTime)
}
