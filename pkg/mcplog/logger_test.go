package mcplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_EmptyPathDisabled(t *testing.T) {
	l, err := NewLogger("")
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestLogger_WriteJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calls.jsonl")
	l, err := NewLogger(path)
	require.NoError(t, err)
	defer l.Close()

	errMsg := "boom"
	require.NoError(t, l.Write(LogEntry{Ts: "2026-01-01T00:00:00Z", Tool: "scan_tokens", DurationMs: 3}))
	require.NoError(t, l.Write(LogEntry{Ts: "2026-01-01T00:00:01Z", Tool: "analyze_styles", Error: &errMsg}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []LogEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e LogEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, "scan_tokens", entries[0].Tool)
	assert.Nil(t, entries[0].Error)
	require.NotNil(t, entries[1].Error)
	assert.Equal(t, "boom", *entries[1].Error)
}

func TestSanitizeParams(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	out := SanitizeParams(map[string]any{
		"text": string(long),
		"root": "/tmp/project",
		"n":    3,
	})

	assert.NotContains(t, out, "text")
	assert.Equal(t, 200, out["text_len"])
	assert.Equal(t, "/tmp/project", out["root"])
	assert.Equal(t, 3, out["n"])
}

func TestResponseBytes(t *testing.T) {
	assert.Equal(t, 0, ResponseBytes(nil))

	result := mcp.NewToolResultText("hello")
	assert.Greater(t, ResponseBytes(result), 0)
}
