package log

import "sync/atomic"

// Registry holds the named facilities a Logger fans out to.
//
// Reads never lock: every mutation builds a new immutable snapshot and
// publishes it atomically, so a log task iterating Enabled keeps a
// consistent view while facilities are registered or removed.
type Registry struct {
	current atomic.Pointer[registrySnapshot]
}

type registrySnapshot struct {
	names  []string
	byName map[string]Facility
}

var emptySnapshot = &registrySnapshot{byName: map[string]Facility{}}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(emptySnapshot)
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by loggers created
// without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds facility under name to the default registry.
func Register(name string, facility Facility) bool {
	return defaultRegistry.Register(name, facility)
}

// Deregister removes name from the default registry.
func Deregister(name string) {
	defaultRegistry.Deregister(name)
}

func (r *Registry) snapshot() *registrySnapshot {
	if s := r.current.Load(); s != nil {
		return s
	}
	return emptySnapshot
}

// swap installs the snapshot returned by update until no concurrent mutation
// interferes. update returns nil to leave the registry unchanged.
func (r *Registry) swap(update func(old *registrySnapshot) *registrySnapshot) bool {
	for {
		old := r.current.Load()
		base := old
		if base == nil {
			base = emptySnapshot
		}
		next := update(base)
		if next == nil {
			return false
		}
		if r.current.CompareAndSwap(old, next) {
			return true
		}
	}
}

// Register adds facility under name. The first registration of a name wins:
// Register returns false and leaves the registry untouched when name is
// already taken.
func (r *Registry) Register(name string, facility Facility) bool {
	return r.swap(func(old *registrySnapshot) *registrySnapshot {
		if _, exists := old.byName[name]; exists {
			return nil
		}
		next := &registrySnapshot{
			names:  make([]string, 0, len(old.names)+1),
			byName: make(map[string]Facility, len(old.byName)+1),
		}
		next.names = append(next.names, old.names...)
		next.names = append(next.names, name)
		for k, v := range old.byName {
			next.byName[k] = v
		}
		next.byName[name] = facility
		return next
	})
}

// Deregister removes the facility registered under name, if any.
func (r *Registry) Deregister(name string) {
	r.swap(func(old *registrySnapshot) *registrySnapshot {
		if _, exists := old.byName[name]; !exists {
			return nil
		}
		next := &registrySnapshot{
			names:  make([]string, 0, len(old.names)),
			byName: make(map[string]Facility, len(old.byName)),
		}
		for _, n := range old.names {
			if n != name {
				next.names = append(next.names, n)
				next.byName[n] = old.byName[n]
			}
		}
		return next
	})
}

// Clear removes every facility.
func (r *Registry) Clear() {
	r.current.Store(emptySnapshot)
}

// Get returns the facility registered under name.
func (r *Registry) Get(name string) (Facility, bool) {
	f, ok := r.snapshot().byName[name]
	return f, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	s := r.snapshot()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Facilities returns every registered facility in registration order.
func (r *Registry) Facilities() []Facility {
	s := r.snapshot()
	out := make([]Facility, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.byName[n])
	}
	return out
}

// Enabled returns the registered facilities that are currently enabled, in
// registration order.
func (r *Registry) Enabled() []Facility {
	s := r.snapshot()
	out := make([]Facility, 0, len(s.names))
	for _, n := range s.names {
		if f := s.byName[n]; f.Enabled() {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of registered facilities.
func (r *Registry) Len() int {
	return len(r.snapshot().names)
}

// Lookup returns the facility registered under name if it has type T.
func Lookup[T Facility](r *Registry, name string) (T, bool) {
	var zero T
	f, ok := r.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := f.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
