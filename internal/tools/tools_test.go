package tools

import (
	"testing"

	"stackmcp/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full catalog must register without name collisions and with every
// tool backed by a handler.
func TestAllModulesRegister(t *testing.T) {
	reg := registry.New()
	for _, module := range All(nil) {
		require.NoError(t, reg.Register(module), "module %s", module.Name)
	}

	assert.Greater(t, len(reg.Tools()), 40)
}

func TestToolNamingConvention(t *testing.T) {
	for _, module := range All(nil) {
		for _, tool := range module.Tools {
			assert.Regexp(t, `^[a-z][a-z0-9_]*$`, tool.Name)
			assert.NotEmpty(t, tool.Description, "tool %s", tool.Name)
			for _, arg := range tool.Args {
				assert.Contains(t, []string{"string", "number", "boolean", "object", "array"}, arg.Type,
					"tool %s arg %s", tool.Name, arg.Name)
			}
		}
	}
}
