package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/filter"
)

// ErrUnknownFilter is returned when a name is not registered.
var ErrUnknownFilter = errors.New("registry: unknown filter")

// Registry holds named filters. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]filter.Filter
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{filters: make(map[string]filter.Filter)}
}

// Register adds f under name.
// If a filter with the same name is already registered, it is replaced.
func (r *Registry) Register(name string, f filter.Filter) error {
	if name == "" || f == nil {
		return fmt.Errorf("%w: empty name or nil filter", rasterfx.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = f
	return nil
}

// Unregister removes a filter from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.filters, name)
}

// IsRegistered checks if a filter with the given name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.filters[name]
	return ok
}

// Get returns the filter registered under name.
func (r *Registry) Get(name string) (filter.Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered filters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filters)
}

// Apply runs the named filter on src, passing mask when it is non-nil.
func (r *Registry) Apply(name string, src, mask *rasterfx.Raster) (*rasterfx.Raster, error) {
	f, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	images := []*rasterfx.Raster{src}
	if mask != nil {
		images = append(images, mask)
	}

	out, err := f.Process(images...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
