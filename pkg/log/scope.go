package log

import (
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
)

// Scope runs log tasks. Go must not block the caller for long; Wait blocks
// until every task started so far has finished and returns the first panic
// recovered from them as an error. A scope stays usable after Wait.
//
// Tasks must not schedule further work on the scope they run on.
type Scope interface {
	Go(task func())
	Wait() error
}

// groupScope runs every task on its own goroutine.
type groupScope struct {
	mu sync.Mutex
	wg *conc.WaitGroup
}

// NewScope returns a Scope that starts one goroutine per task. Panics in
// tasks are recovered and reported by Wait.
func NewScope() Scope {
	return &groupScope{wg: conc.NewWaitGroup()}
}

func (s *groupScope) Go(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wg.Go(task)
}

func (s *groupScope) Wait() error {
	s.mu.Lock()
	wg := s.wg
	s.wg = conc.NewWaitGroup()
	s.mu.Unlock()

	return wg.WaitAndRecover().AsError()
}

// poolScope bounds the number of concurrently running tasks.
type poolScope struct {
	mu      sync.Mutex
	size    int
	pool    *pool.Pool
	catcher *panics.Catcher
}

// NewPoolScope returns a Scope running at most n tasks at once. Go blocks
// while n tasks are running. n < 1 is treated as 1.
func NewPoolScope(n int) Scope {
	if n < 1 {
		n = 1
	}
	s := &poolScope{size: n}
	s.reset()
	return s
}

func (s *poolScope) reset() {
	s.pool = pool.New().WithMaxGoroutines(s.size)
	s.catcher = &panics.Catcher{}
}

func (s *poolScope) Go(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catcher := s.catcher
	s.pool.Go(func() { catcher.Try(task) })
}

func (s *poolScope) Wait() error {
	s.mu.Lock()
	p, catcher := s.pool, s.catcher
	s.reset()
	s.mu.Unlock()

	p.Wait()
	return catcher.Recovered().AsError()
}

// InlineScope runs tasks synchronously on the calling goroutine. It is
// mostly useful in tests, where log output must be visible as soon as the
// logging call returns. The zero value is ready to use.
type InlineScope struct {
	mu      sync.Mutex
	catcher *panics.Catcher
}

// Go runs task immediately, recovering any panic.
func (s *InlineScope) Go(task func()) {
	s.mu.Lock()
	if s.catcher == nil {
		s.catcher = &panics.Catcher{}
	}
	catcher := s.catcher
	s.mu.Unlock()

	catcher.Try(task)
}

// Wait returns the first panic recovered since the previous Wait.
func (s *InlineScope) Wait() error {
	s.mu.Lock()
	catcher := s.catcher
	s.catcher = nil
	s.mu.Unlock()

	if catcher == nil {
		return nil
	}
	return catcher.Recovered().AsError()
}

var (
	defaultScopeOnce sync.Once
	defaultScope     Scope
)

// DefaultScope returns the process-wide scope used when none is configured.
func DefaultScope() Scope {
	defaultScopeOnce.Do(func() {
		defaultScope = NewScope()
	})
	return defaultScope
}

// Compile-time interface satisfaction checks.
var (
	_ Scope = (*groupScope)(nil)
	_ Scope = (*poolScope)(nil)
	_ Scope = (*InlineScope)(nil)
)
