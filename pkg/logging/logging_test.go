package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestInitAndFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelInfo, &buf)

	Debug("Test", "this should be filtered out")
	assert.Empty(t, buf.String())

	Info("Test", "hello %s", "world")
	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "subsystem=Test")
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)

	Error("Transport", assert.AnError, "request failed")
	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, assert.AnError.Error())
}

func TestUninitializedLoggerDoesNotPanic(t *testing.T) {
	saved := defaultLogger
	defaultLogger = nil
	defer func() { defaultLogger = saved }()

	assert.NotPanics(t, func() {
		Info("Test", "no logger configured")
	})
}
