package recording

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a new, empty backend. Factories are called once per
// NewBackend call, so every caller owns the backend it gets.
type BackendFactory func() Backend

// registry maps backend names to factories. Backend packages add themselves
// from an init function, the way database/sql drivers do:
//
//	import _ "github.com/gogpu/textlerp/raster"
//
//	b, err := recording.NewBackend("raster")
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

var backends = &registry{factories: make(map[string]BackendFactory)}

func (reg *registry) lookup(name string) (BackendFactory, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	f, ok := reg.factories[name]
	return f, ok
}

func (reg *registry) names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	var names []string
	for name := range reg.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register makes a backend available under name. It panics if factory is
// nil or name is taken.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: Register factory is nil")
	}
	backends.mu.Lock()
	defer backends.mu.Unlock()
	if _, dup := backends.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends.factories[name] = factory
}

// Unregister removes the backend registered under name, if any.
func Unregister(name string) {
	backends.mu.Lock()
	defer backends.mu.Unlock()
	delete(backends.factories, name)
}

// NewBackend creates a backend by name. An unknown name usually means the
// backend package was never imported.
func NewBackend(name string) (Backend, error) {
	factory, ok := backends.lookup(name)
	if !ok {
		known := backends.names()
		if len(known) == 0 {
			return nil, fmt.Errorf("recording: unknown backend %q (no backends registered, forgotten import?)", name)
		}
		return nil, fmt.Errorf("recording: unknown backend %q (have %s)", name, strings.Join(known, ", "))
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on an unknown name.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	return backends.names()
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	_, ok := backends.lookup(name)
	return ok
}
