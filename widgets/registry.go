package widgets

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/pthm/pinview"
)

// ErrUnknownWidget is returned when a widget name has no factory.
var ErrUnknownWidget = errors.New("widgets: unknown widget")

// Factory creates a widget builder.
type Factory func(s *pinview.Session, payload ...any) *pinview.Builder

// Registry maps widget names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry with a factory for every widget of catalog.
// A nil catalog uses DefaultCatalog.
func NewRegistry(catalog *Catalog) *Registry {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	reg := &Registry{factories: make(map[string]Factory)}
	for _, spec := range catalog.Specs() {
		spec := spec
		reg.Add(spec.Name, func(s *pinview.Session, payload ...any) *pinview.Builder {
			return FromSpec(s, spec, payload...)
		})
	}
	return reg
}

// Add registers a factory under name.
// Panics if the name is empty or already registered.
func (reg *Registry) Add(name string, factory Factory) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	key := normalize(name)
	if key == "" {
		panic("pinview: widget name must not be empty")
	}
	if factory == nil {
		panic(fmt.Sprintf("pinview: nil factory for widget %q", name))
	}
	if _, exists := reg.factories[key]; exists {
		panic(fmt.Sprintf("pinview: widget collision for %q", name))
	}
	reg.factories[key] = factory
}

// Lookup returns the factory registered under name.
func (reg *Registry) Lookup(name string) (Factory, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	f, ok := reg.factories[normalize(name)]
	return f, ok
}

// Build creates the widget name in session s.
func (reg *Registry) Build(s *pinview.Session, name string, payload ...any) (*pinview.Builder, error) {
	f, ok := reg.Lookup(name)
	if !ok {
		tracer().Debugf("registry: no widget %q", name)
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	return f(s, payload...), nil
}

// Names returns the registered names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.factories))
	for name := range reg.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
