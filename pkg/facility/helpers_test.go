package facility_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dailylog/dailylog/pkg/fileio"
)

var day1 = time.Date(2024, time.March, 7, 14, 3, 59, 0, time.UTC)

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// eventLog records notifier callbacks in order.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	copy(out, l.events)
	return out
}

func (l *eventLog) notifier() fileio.NotifierFuncs {
	return fileio.NotifierFuncs{
		Opened:        func(p string) { l.add("opened " + p) },
		Closed:        func(p string) { l.add("closed " + p) },
		FolderInvalid: func(p string) { l.add("invalid " + p) },
		WriteFailed:   func(p string, err error) { l.add("failed " + p + ": " + err.Error()) },
	}
}

var errInjected = errors.New("injected failure")

// countingStore wraps a Store, counting writes and failing on demand.
type countingStore struct {
	fileio.Store

	writes   atomic.Int32
	appends  atomic.Int32
	seeds    atomic.Int32
	failNext atomic.Int32
}

func (s *countingStore) fail() error {
	for {
		n := s.failNext.Load()
		if n <= 0 {
			return nil
		}
		if s.failNext.CompareAndSwap(n, n-1) {
			return errInjected
		}
	}
}

func (s *countingStore) Write(ctx context.Context, path string, position int64, contents string) error {
	if err := s.fail(); err != nil {
		return err
	}
	if contents == "[]" {
		s.seeds.Add(1)
	} else {
		s.writes.Add(1)
	}
	return s.Store.Write(ctx, path, position, contents)
}

func (s *countingStore) Append(ctx context.Context, path string, contents string) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.appends.Add(1)
	return s.Store.Append(ctx, path, contents)
}

func newMemoryStore(t *testing.T) (*fileio.MemoryStore, *countingStore) {
	t.Helper()
	mem := fileio.NewMemoryStore()
	require.True(t, mem.MakeDirectories(context.Background(), "/"))
	return mem, &countingStore{Store: mem}
}

func readMemory(t *testing.T, mem *fileio.MemoryStore, path string) string {
	t.Helper()
	data, ok := mem.Contents(path)
	require.True(t, ok, "file %s does not exist", path)
	return string(data)
}
