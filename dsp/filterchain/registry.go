package filterchain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFilter is returned when a stage references an unregistered type.
var ErrUnknownFilter = errors.New("unknown filter type")

// Stage is the per-sample processing contract of a chain element.
type Stage interface {
	Process(x uint8) uint8
	Reset()
}

// Factory builds one Stage from its parameters.
type Factory func(p Params) (Stage, error)

// Registry maps filter type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateFilter = errors.New("duplicate filter type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given filter type.
func (r *Registry) Register(filterType string, factory Factory) error {
	if filterType == "" {
		return errors.New("empty filter type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[filterType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateFilter, filterType)
	}

	r.factories[filterType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(filterType string, factory Factory) {
	err := r.Register(filterType, factory)
	if err != nil {
		panic("filterchain registry: " + err.Error())
	}
}

// Lookup returns the factory for the given filter type, or nil.
func (r *Registry) Lookup(filterType string) Factory {
	return r.factories[filterType]
}

// Build creates a Stage for p.
func (r *Registry) Build(p Params) (Stage, error) {
	factory := r.Lookup(p.Type)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, p.Type)
	}

	return factory(p)
}

// Names returns the registered filter types in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
