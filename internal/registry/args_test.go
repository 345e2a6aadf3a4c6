package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgAccessors(t *testing.T) {
	args := map[string]interface{}{
		"name":    "example.com",
		"years":   float64(3),
		"count":   7,
		"dry_run": true,
		"record":  map[string]interface{}{"type": "A"},
		"tags":    []interface{}{"a", "b"},
	}

	assert.Equal(t, "example.com", StringArg(args, "name"))
	assert.Equal(t, "", StringArg(args, "missing"))
	assert.Equal(t, "fallback", StringArgOr(args, "missing", "fallback"))
	assert.Equal(t, "example.com", StringArgOr(args, "name", "fallback"))
	assert.Equal(t, 3, IntArg(args, "years"))
	assert.Equal(t, 7, IntArg(args, "count"))
	assert.Equal(t, 0, IntArg(args, "missing"))
	assert.True(t, BoolArg(args, "dry_run"))
	assert.False(t, BoolArg(args, "missing"))
	assert.Equal(t, map[string]interface{}{"type": "A"}, ObjectArg(args, "record"))
	assert.Equal(t, []interface{}{"a", "b"}, ArrayArg(args, "tags"))
}
