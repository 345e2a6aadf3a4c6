package registry

import (
	"context"
	"fmt"
)

// Arg describes a single tool argument for schema generation and
// validation. Only presence and primitive type are validated before
// dispatch; deep schema validation is left to the backend.
type Arg struct {
	Name        string
	Type        string // "string", "number", "boolean", "object" or "array"
	Description string
	Required    bool
}

// Descriptor is the published description of one tool: its unique name,
// a human-readable description and the argument schema exposed to MCP
// clients.
type Descriptor struct {
	Name        string
	Description string
	Args        []Arg
}

// Handler executes one tool call. Arguments have already been validated
// against the tool's declared schema when a handler runs. Handlers are free
// to return any classified error; the dispatcher is the single place that
// converts errors into the protocol envelope.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Module is the contribution of one functional area (dns, vps, email, ...):
// an ordered list of tool descriptors plus the handler for each of them.
// The registry holds references to the handlers, never copies of behavior.
type Module struct {
	Name     string
	Tools    []Descriptor
	Handlers map[string]Handler
}

// validate checks the Module invariant: every descriptor has exactly one
// handler and vice versa.
func (m Module) validate() error {
	if m.Name == "" {
		return fmt.Errorf("module has no name")
	}

	declared := make(map[string]bool, len(m.Tools))
	for _, tool := range m.Tools {
		if declared[tool.Name] {
			return fmt.Errorf("module %s declares tool %s twice", m.Name, tool.Name)
		}
		declared[tool.Name] = true

		if _, ok := m.Handlers[tool.Name]; !ok {
			return fmt.Errorf("module %s declares tool %s without a handler", m.Name, tool.Name)
		}
	}

	for name := range m.Handlers {
		if !declared[name] {
			return fmt.Errorf("module %s has a handler for undeclared tool %s", m.Name, name)
		}
	}

	return nil
}

// Result is the successful outcome of a dispatch: the handler's payload,
// serialized by the protocol layer as the single content item.
type Result struct {
	Payload interface{}
}
