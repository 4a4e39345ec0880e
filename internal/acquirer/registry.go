package acquirer

import "fmt"

// Registry maps acquirer names to their adapters. The orchestrator and
// the reconciliation path resolve adapters through it so new providers
// are added by registering one more adapter, not by branching logic.
type Registry struct {
	adapters map[string]Acquirer
}

func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Acquirer),
	}
}

func (r *Registry) Register(a Acquirer) {
	r.adapters[a.Name()] = a
}

func (r *Registry) Get(name string) (Acquirer, error) {
	if a, exists := r.adapters[name]; exists {
		return a, nil
	}
	return nil, fmt.Errorf("acquirer %s not configured", name)
}
