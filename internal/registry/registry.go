package registry

import (
	"context"
	"fmt"
	"sync"

	"stackmcp/pkg/logging"
)

// Registry is the append-only collection of tool descriptors and handlers
// assembled from every domain module at startup. Tool names are unique
// across the whole registry; a collision is a construction-time defect, not
// a runtime condition.
type Registry struct {
	mu          sync.RWMutex
	tools       []Descriptor // registration order, for stable listings
	descriptors map[string]Descriptor
	handlers    map[string]Handler
	owners      map[string]string // tool name -> module name, for collision reports
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
		handlers:    make(map[string]Handler),
		owners:      make(map[string]string),
	}
}

// Register adds a module's tools and handlers to the registry. It fails
// fast when the module is internally inconsistent or when any of its tool
// names is already taken by another module.
func (r *Registry) Register(module Module) error {
	if err := module.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tool := range module.Tools {
		if owner, exists := r.owners[tool.Name]; exists {
			return fmt.Errorf("tool %s from module %s already registered by module %s", tool.Name, module.Name, owner)
		}
	}

	for _, tool := range module.Tools {
		r.tools = append(r.tools, tool)
		r.descriptors[tool.Name] = tool
		r.handlers[tool.Name] = module.Handlers[tool.Name]
		r.owners[tool.Name] = module.Name
	}

	logging.Info("Registry", "Registered module %s with %d tools", module.Name, len(module.Tools))
	return nil
}

// Tools returns all descriptors in registration order.
func (r *Registry) Tools() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Descriptor, len(r.tools))
	copy(result, r.tools)
	return result
}

// Dispatch looks up a tool by name, validates the argument bag against its
// declared schema and invokes the handler. Validation always precedes any
// I/O the handler performs. Errors come back as the classified types in
// errors.go or whatever the handler returned; converting them into the
// protocol envelope is the server layer's job.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]interface{}) (*Result, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	descriptor := r.descriptors[name]
	r.mu.RUnlock()

	if args == nil {
		return nil, &MissingArgumentsError{Tool: name}
	}

	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	if err := validateArgs(name, descriptor.Args, args); err != nil {
		return nil, err
	}

	payload, err := handler(ctx, args)
	if err != nil {
		logging.Error("Registry", err, "Tool %s failed", name)
		return nil, err
	}

	return &Result{Payload: payload}, nil
}

// validateArgs enforces presence of required arguments and primitive-type
// agreement for every supplied argument that the schema declares. The
// first violation wins.
func validateArgs(tool string, declared []Arg, args map[string]interface{}) error {
	for _, arg := range declared {
		value, present := args[arg.Name]
		if !present {
			if arg.Required {
				return &ValidationError{Tool: tool, Field: arg.Name, Reason: "required argument missing"}
			}
			continue
		}

		if !typeMatches(arg.Type, value) {
			return &ValidationError{
				Tool:   tool,
				Field:  arg.Name,
				Reason: fmt.Sprintf("expected %s, got %T", arg.Type, value),
			}
		}
	}
	return nil
}

// typeMatches checks a decoded JSON value against a declared primitive
// type. JSON numbers decode as float64; integral values are accepted for
// "number" either way.
func typeMatches(declaredType string, value interface{}) bool {
	switch declaredType {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		switch value.(type) {
		case float64, int, int64:
			return true
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "object":
		_, ok := value.(map[string]interface{})
		return ok
	case "array":
		_, ok := value.([]interface{})
		return ok
	default:
		// Unknown declared types pass; the backend is the authority for
		// anything beyond the primitives.
		return true
	}
}
