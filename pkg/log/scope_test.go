package log

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeRunsTasks(t *testing.T) {
	scopes := map[string]Scope{
		"group":  NewScope(),
		"pool":   NewPoolScope(4),
		"inline": &InlineScope{},
	}

	for name, scope := range scopes {
		t.Run(name, func(t *testing.T) {
			var count atomic.Int32
			for i := 0; i < 100; i++ {
				scope.Go(func() { count.Add(1) })
			}
			require.NoError(t, scope.Wait())
			assert.Equal(t, int32(100), count.Load())
		})
	}
}

func TestScopeRecoversPanics(t *testing.T) {
	scopes := map[string]Scope{
		"group":  NewScope(),
		"pool":   NewPoolScope(2),
		"inline": &InlineScope{},
	}

	for name, scope := range scopes {
		t.Run(name, func(t *testing.T) {
			var ran atomic.Bool
			scope.Go(func() { panic("facility exploded") })
			scope.Go(func() { ran.Store(true) })

			err := scope.Wait()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "facility exploded")
			assert.True(t, ran.Load(), "other tasks still run")

			// The scope is reusable and the panic is not reported twice.
			scope.Go(func() {})
			assert.NoError(t, scope.Wait())
		})
	}
}

func TestPoolScopeBoundsConcurrency(t *testing.T) {
	const limit = 3
	scope := NewPoolScope(limit)

	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	for i := 0; i < 20; i++ {
		scope.Go(func() {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
		})
	}
	require.NoError(t, scope.Wait())

	assert.LessOrEqual(t, peak, limit)
	assert.GreaterOrEqual(t, peak, 1)
}

func TestInlineScopeIsSynchronous(t *testing.T) {
	var scope InlineScope
	done := false
	scope.Go(func() { done = true })
	assert.True(t, done)
	assert.NoError(t, scope.Wait())
}

func TestDefaultScopeIsShared(t *testing.T) {
	assert.Same(t, DefaultScope(), DefaultScope())
}
