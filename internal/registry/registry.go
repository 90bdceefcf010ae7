package registry

import (
	"fmt"
	"sort"

	"github.com/opkit/fileops/internal/fileops"
	"github.com/opkit/fileops/internal/types"
)

// Operation binds a name to a handler and its declared parameter schema.
type Operation struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parameters  []types.Parameter `json:"parameters"`
	Handler     fileops.Handler   `json:"-"`
}

// Registry is the static catalog of operations. It is populated once at
// startup and read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	ops map[string]Operation
}

// New creates an empty registry
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds an operation to the catalog
func (r *Registry) Register(op Operation) error {
	if op.Name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}
	if op.Handler == nil {
		return fmt.Errorf("operation %s has no handler", op.Name)
	}
	if _, exists := r.ops[op.Name]; exists {
		return fmt.Errorf("operation already registered: %s", op.Name)
	}
	r.ops[op.Name] = op
	return nil
}

// Lookup retrieves an operation by name
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// List returns all operations sorted by name
func (r *Registry) List() []Operation {
	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Len returns the number of registered operations
func (r *Registry) Len() int {
	return len(r.ops)
}
