package fileio

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/dailylog/dailylog/pkg/logdate"
)

// MemoryStore is an in-memory implementation of the Store interface.
// Paths always use '/' as separator. This is primarily useful for testing and
// for hosts without a writable file system.
type MemoryStore struct {
	opts storeOptions

	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	o := defaultStoreOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryStore{
		opts:  o,
		files: make(map[string][]byte),
		dirs:  map[string]struct{}{"/": {}},
	}
}

// Separator returns '/'.
func (s *MemoryStore) Separator() rune {
	return '/'
}

// MakeDirectories records path and all of its parents as directories.
func (s *MemoryStore) MakeDirectories(ctx context.Context, p string) bool {
	if ctx.Err() != nil {
		return false
	}
	p = cleanPath(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	for dir := p; ; dir = path.Dir(dir) {
		if _, isFile := s.files[dir]; isFile {
			return false
		}
		if dir == "/" || dir == "." {
			break
		}
	}
	for dir := p; dir != "/" && dir != "."; dir = path.Dir(dir) {
		s.dirs[dir] = struct{}{}
	}
	return true
}

// Size returns the size of the file in bytes, or 0 if it does not exist.
func (s *MemoryStore) Size(ctx context.Context, p string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p = cleanPath(p)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, isDir := s.dirs[p]; isDir {
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, p)
	}
	return int64(len(s.files[p])), nil
}

// Write writes contents at the relative position, overwriting in place.
func (s *MemoryStore) Write(ctx context.Context, p string, position int64, contents string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p = cleanPath(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkParentLocked(p); err != nil {
		return err
	}

	data := s.files[p]
	offset := RelativeToSize(position, int64(len(data)))
	end := offset + int64(len(contents))
	if end > int64(len(data)) {
		grown := make([]byte, end)
		copy(grown, data)
		data = grown
	}
	copy(data[offset:], contents)
	s.files[p] = data
	return nil
}

// Append writes contents at end-of-file.
func (s *MemoryStore) Append(ctx context.Context, p string, contents string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p = cleanPath(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkParentLocked(p); err != nil {
		return err
	}
	s.files[p] = append(s.files[p], contents...)
	return nil
}

// Ensure creates an empty file, and its parent directories, if missing.
func (s *MemoryStore) Ensure(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p = cleanPath(p)
	if !s.MakeDirectories(ctx, path.Dir(p)) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path.Dir(p))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, isDir := s.dirs[p]; isDir {
		return fmt.Errorf("%w: %s", ErrIsDirectory, p)
	}
	if _, ok := s.files[p]; !ok {
		s.files[p] = []byte{}
	}
	return nil
}

// Delete removes the file at path.
func (s *MemoryStore) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p = cleanPath(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, p)
	return nil
}

// Files returns every file under dir, sorted.
func (s *MemoryStore) Files(ctx context.Context, dir string) ([]string, error) {
	return s.list(ctx, dir, nil)
}

// FilesAfter returns the files under dir dated strictly after date, sorted.
func (s *MemoryStore) FilesAfter(ctx context.Context, dir string, date logdate.Date) ([]string, error) {
	return s.list(ctx, dir, &date)
}

// Contents returns a copy of the file's bytes and whether it exists.
func (s *MemoryStore) Contents(p string) ([]byte, bool) {
	p = cleanPath(p)

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[p]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Exists reports whether a file exists at path.
func (s *MemoryStore) Exists(p string) bool {
	_, ok := s.Contents(p)
	return ok
}

func (s *MemoryStore) list(ctx context.Context, dir string, after *logdate.Date) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := cleanPath(dir)
	if prefix != "/" {
		prefix += "/"
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var files []string
	for p := range s.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		if after != nil && !s.opts.codec.MatchesAfter(path.Base(p), after) {
			continue
		}
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}

func (s *MemoryStore) checkParentLocked(p string) error {
	if _, isDir := s.dirs[p]; isDir {
		return fmt.Errorf("%w: %s", ErrIsDirectory, p)
	}
	parent := path.Dir(p)
	if _, ok := s.dirs[parent]; !ok {
		return fmt.Errorf("%w: %s", ErrNotDirectory, parent)
	}
	return nil
}

func cleanPath(p string) string {
	return path.Clean("/" + p)
}

// Compile-time interface satisfaction check.
var _ Store = (*MemoryStore)(nil)
