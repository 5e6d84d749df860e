package core

import (
	"reflect"
	"sync"
)

// CleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type CleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// Registry tracks the matchers created by the factory functions, and caches the
// per-type wildcards returned by AnyIn. Clearing it releases both.
// A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	created   []any
	wildcards map[reflect.Type]any
}

// Clear drops every tracked matcher and every cached wildcard.
// Matchers already handed out keep working; they are just no longer owned.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.created = nil
	r.wildcards = nil
}

// Len returns the number of matchers currently tracked, cached wildcards included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.created)
}

// DefaultRegistry returns the process-wide registry used by the package-level
// matcher factories.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegistryFor returns the registry for the given test, creating one if needed.
// Multiple calls with the same test return the same Registry. The registry is
// cleared and forgotten when the test completes.
func RegistryFor(t CleanupRegistrar) *Registry {
	scopedMu.Lock()
	defer scopedMu.Unlock()

	if reg, ok := scoped[t]; ok {
		return reg
	}

	reg := NewRegistry()
	scoped[t] = reg

	t.Cleanup(func() {
		scopedMu.Lock()
		delete(scoped, t)
		scopedMu.Unlock()

		reg.Clear()
	})

	return reg
}

// Track records matcher as owned by reg and returns it unchanged.
func Track[M any](reg *Registry, matcher M) M {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.created = append(reg.created, matcher)

	return matcher
}

// unexported variables.
var (
	//nolint:gochecknoglobals // process-wide registry behind the package-level factories
	defaultRegistry = NewRegistry()
	//nolint:gochecknoglobals // per-test registries, removed on cleanup
	scoped = make(map[CleanupRegistrar]*Registry)
	//nolint:gochecknoglobals // Mutex for scoped
	scopedMu sync.Mutex
)

func cachedWildcard[T any](reg *Registry) Matcher[T] {
	key := reflect.TypeFor[T]()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if cached, ok := reg.wildcards[key]; ok {
		matcher, _ := cached.(Matcher[T])

		return matcher
	}

	if reg.wildcards == nil {
		reg.wildcards = make(map[reflect.Type]any)
	}

	var matcher Matcher[T] = &anyMatcher[T]{}

	reg.wildcards[key] = matcher
	reg.created = append(reg.created, matcher)

	return matcher
}
