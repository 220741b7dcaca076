package validator

import (
	"slices"
	"sync"
)

// Registry holds custom checks by name. It belongs to a single Validator.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]CheckFunc)}
}

// Register stores fn under name, replacing any earlier check with that name.
// Empty names and nil functions are ignored.
func (r *Registry) Register(name string, fn CheckFunc) {
	if name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = fn
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Get returns the check registered under name, or nil. Call Has first.
func (r *Registry) Get(name string) CheckFunc {
	fn, _ := r.Lookup(name)
	return fn
}

func (r *Registry) Lookup(name string) (CheckFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.checks[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}
