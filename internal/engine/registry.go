package engine

import "sync"

// Registry holds registered engines keyed by name. Registration happens at
// startup; during query handling the registry is only read, except for the
// administrative Disabled toggle.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*entry
	// order preserves registration order for deterministic category lookups.
	order []string
}

type entry struct {
	engine   Engine
	disabled bool
}

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]*entry),
	}
}

// Register adds an engine under its descriptor name. Re-registering the same
// name silently overwrites the prior entry (last write wins) but keeps the
// original position in registration order.
func (r *Registry) Register(e Engine) {
	d := e.Descriptor()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.engines[d.Name] = &entry{engine: e, disabled: d.Disabled}
}

// Get returns the engine registered under name, disabled or not.
func (r *Registry) Get(name string) (Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ent, ok := r.engines[name]
	if !ok {
		return nil, false
	}
	return ent.engine, true
}

// ByCategory returns every registered, non-disabled engine whose category
// set contains category, in registration order. Disabled engines are
// invisible here but still retrievable via Get.
func (r *Registry) ByCategory(category string) []Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Engine
	for _, name := range r.order {
		ent := r.engines[name]
		if ent.disabled {
			continue
		}
		if ent.engine.Descriptor().HasCategory(category) {
			matched = append(matched, ent.engine)
		}
	}
	return matched
}

// Names returns all registered engine names in registration order,
// disabled or not.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// SetDisabled toggles the administrative disabled flag for name. It returns
// false if no engine is registered under that name.
func (r *Registry) SetDisabled(name string, disabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ent, ok := r.engines[name]
	if !ok {
		return false
	}
	ent.disabled = disabled
	return true
}

// Disabled reports the current administrative disabled flag for name.
func (r *Registry) Disabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ent, ok := r.engines[name]
	return ok && ent.disabled
}

// List returns the descriptors of all registered engines in registration
// order, with the live disabled flag applied.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		ent := r.engines[name]
		d := ent.engine.Descriptor()
		d.Disabled = ent.disabled
		descs = append(descs, d)
	}
	return descs
}
