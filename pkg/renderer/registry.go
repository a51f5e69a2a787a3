package renderer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/user/videoout/pkg/ports"
)

// ID identifies a registered backend.
type ID int

// Factory builds a backend instance.
type Factory func(log ports.Logger) ports.Backend

type registration struct {
	id      ID
	name    string
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = map[string]registration{}
)

// Register makes a backend available to Create. Ids and names must be unique.
func Register(id ID, name string, factory Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || factory == nil {
		return fmt.Errorf("register backend %d: name and factory are required", id)
	}
	if _, ok := registry[name]; ok {
		return fmt.Errorf("register backend %q: name already registered", name)
	}
	for _, reg := range registry {
		if reg.id == id {
			return fmt.Errorf("register backend %q: id %d already used by %q", name, id, reg.name)
		}
	}
	registry[name] = registration{id: id, name: name, factory: factory}
	return nil
}

// MustRegister is Register for use in init functions.
func MustRegister(id ID, name string, factory Factory) {
	if err := Register(id, name, factory); err != nil {
		panic(err)
	}
}

// Create builds a renderer around the backend registered under name.
func Create(name string, log ports.Logger) (*Renderer, error) {
	registryMu.RLock()
	reg, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", name)
	}

	r := New(reg.factory(log), log)
	r.id = reg.id
	r.name = reg.name
	return r, nil
}

// Names lists the registered backend names in id order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	regs := make([]registration, 0, len(registry))
	for _, reg := range registry {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].id < regs[j].id })

	names := make([]string, len(regs))
	for i, reg := range regs {
		names[i] = reg.name
	}
	return names
}
