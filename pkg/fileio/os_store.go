package fileio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dailylog/dailylog/pkg/logdate"
)

const (
	filePerm = 0644
	dirPerm  = 0755
)

// OSStore is a Store backed by the operating system's file system.
// Writes to the same path are serialized; writes to different paths proceed
// concurrently.
type OSStore struct {
	opts storeOptions

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOSStore creates a new file system store.
func NewOSStore(opts ...StoreOption) *OSStore {
	o := defaultStoreOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &OSStore{
		opts:  o,
		locks: make(map[string]*sync.Mutex),
	}
}

// Separator returns the operating system's path separator.
func (s *OSStore) Separator() rune {
	return filepath.Separator
}

// MakeDirectories creates path and any missing parents.
func (s *OSStore) MakeDirectories(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	_ = os.MkdirAll(path, dirPerm)
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Size returns the size of the file in bytes, or 0 if it does not exist.
func (s *OSStore) Size(ctx context.Context, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return info.Size(), nil
}

// Write writes contents at the relative position, overwriting in place.
func (s *OSStore) Write(ctx context.Context, path string, position int64, contents string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.lock(path)
	defer unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	offset := RelativeToSize(position, info.Size())
	if _, err := f.WriteAt([]byte(contents), offset); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Append writes contents at end-of-file.
func (s *OSStore) Append(ctx context.Context, path string, contents string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.lock(path)
	defer unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Ensure creates an empty file, and its parent directories, if missing.
func (s *OSStore) Ensure(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	parent := filepath.Dir(path)
	if !s.MakeDirectories(ctx, parent) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, parent)
	}

	unlock := s.lock(path)
	defer unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	return f.Close()
}

// Delete removes the file at path.
func (s *OSStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.lock(path)
	defer unlock()

	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Files returns every regular file under dir.
func (s *OSStore) Files(ctx context.Context, dir string) ([]string, error) {
	return s.walk(ctx, dir, nil)
}

// FilesAfter returns the files under dir dated strictly after date.
func (s *OSStore) FilesAfter(ctx context.Context, dir string, date logdate.Date) ([]string, error) {
	return s.walk(ctx, dir, &date)
}

func (s *OSStore) walk(ctx context.Context, dir string, after *logdate.Date) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable entries are skipped
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if after != nil && !s.opts.codec.MatchesAfter(d.Name(), after) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return files, nil
}

// lock acquires the mutex for path and returns its release function.
func (s *OSStore) lock(path string) func() {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}

	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Compile-time interface satisfaction check.
var _ Store = (*OSStore)(nil)
