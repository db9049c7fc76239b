package jsonrpc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Info("hello", "method", "math.add")
	l.Warn("careful")
	l.Error("boom", "code", -32603)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "hello", first["message"])
	assert.Equal(t, "math.add", first["method"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "warn", second["level"])

	var third map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.Equal(t, "error", third["level"])
	assert.Equal(t, float64(-32603), third["code"])
}

func TestFieldPairs(t *testing.T) {
	assert.Nil(t, fieldPairs(nil))

	fields := fieldPairs([]any{"k", 1, "j", "v"})
	assert.Equal(t, map[string]any{"k": 1, "j": "v"}, fields)

	// An odd trailing value is kept rather than dropped.
	fields = fieldPairs([]any{"k", 1, "dangling"})
	assert.Equal(t, map[string]any{"k": 1, "extra": "dangling"}, fields)

	// Non-string keys are stringified.
	fields = fieldPairs([]any{42, "v"})
	assert.Equal(t, map[string]any{"42": "v"}, fields)
}
