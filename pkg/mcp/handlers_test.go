package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/brandlint/pkg/analyzer"
)

// --- helpers ---

func testServer() *Server {
	return NewServer(analyzer.New(analyzer.DefaultConfig(), nil), nil, nil)
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

const targetJSON = `{
  "colors": {
    "primary": {"value": "#0b3d2e"},
    "secondary": {"value": "#e07a5f"},
    "accent": {"value": "#f2cc8f"},
    "background": {"value": "#f4f1ea"},
    "surface": {"value": "#ffffff"},
    "text": {"value": "#1c1b1a"}
  },
  "typography": {
    "display": {"family": "Fraunces"},
    "body": {"family": "Karla"}
  }
}`

// --- scan_tokens ---

func TestHandleScanTokens(t *testing.T) {
	s := testServer()
	result, err := s.handleScanTokens(context.Background(),
		makeRequest("scan_tokens", map[string]any{"text": `:root { --color-primary: #3b82f6; --font-sans: Inter; }`}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var sr struct {
		Colors []string `json:"Colors"`
		Fonts  []string `json:"Fonts"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &sr))
	assert.Equal(t, []string{"#3b82f6"}, sr.Colors)
	assert.Equal(t, []string{"Inter"}, sr.Fonts)
}

func TestHandleScanTokens_MissingText(t *testing.T) {
	s := testServer()
	result, err := s.handleScanTokens(context.Background(), makeRequest("scan_tokens", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

// --- analyze_styles ---

func TestHandleAnalyzeStyles(t *testing.T) {
	s := testServer()
	result, err := s.handleAnalyzeStyles(context.Background(),
		makeRequest("analyze_styles", map[string]any{"text": `:root { --a: #3b82f6; --b: #2d5a4a; --c: #e07a5f; }`}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var report struct {
		Score  int `json:"score"`
		Issues []struct {
			Kind string `json:"kind"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, 85, report.Score)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "generic-color", report.Issues[0].Kind)
}

// --- analyze_project ---

func TestHandleAnalyzeProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "globals.css"),
		[]byte(`:root { --a: #2d5a4a; --b: #e07a5f; --c: #f4f1ea; }`), 0644))

	s := testServer()
	result, err := s.handleAnalyzeProject(context.Background(),
		makeRequest("analyze_project", map[string]any{"root": dir}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var report struct {
		CurrentScore int `json:"current_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, 100, report.CurrentScore)
}

// --- build_migration ---

func TestHandleBuildMigration(t *testing.T) {
	s := testServer()
	result, err := s.handleBuildMigration(context.Background(),
		makeRequest("build_migration", map[string]any{
			"current": `:root { --a: #3b82f6; --font-sans: Inter; }`,
			"target":  targetJSON,
		}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var m struct {
		ColorMappings map[string]string `json:"color_mappings"`
		FontMappings  map[string]string `json:"font_mappings"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &m))
	assert.Equal(t, "#0b3d2e", m.ColorMappings["#3b82f6"])
	assert.Equal(t, "Karla", m.FontMappings["Inter"])
}

func TestHandleBuildMigration_PreserveAndScript(t *testing.T) {
	s := testServer()
	result, err := s.handleBuildMigration(context.Background(),
		makeRequest("build_migration", map[string]any{
			"current":         `:root { --a: #3b82f6; --b: #6366f1; }`,
			"target":          targetJSON,
			"preserve_colors": "#3b82f6",
			"script":          true,
		}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	script := resultText(t, result)
	assert.Contains(t, script, "#!/bin/sh")
	assert.NotContains(t, script, "s/#3b82f6/")
	assert.Contains(t, script, "#6366f1")
}

func TestHandleBuildMigration_IncompleteTarget(t *testing.T) {
	s := testServer()
	result, err := s.handleBuildMigration(context.Background(),
		makeRequest("build_migration", map[string]any{
			"current": ":root {}",
			"target":  `{"colors": {"primary": {"value": "#0b3d2e"}}}`,
		}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

// --- render_tokens ---

func TestHandleRenderTokens_CSS(t *testing.T) {
	s := testServer()
	result, err := s.handleRenderTokens(context.Background(),
		makeRequest("render_tokens", map[string]any{"target": targetJSON, "format": "css"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "--color-primary: #0b3d2e;")
}

func TestHandleRenderTokens_DefaultJSON(t *testing.T) {
	s := testServer()
	result, err := s.handleRenderTokens(context.Background(),
		makeRequest("render_tokens", map[string]any{"target": targetJSON, "brand": "Thicket"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var doc struct {
		Meta struct {
			Brand string `json:"brand"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &doc))
	assert.Equal(t, "Thicket", doc.Meta.Brand)
}

func TestHandleRenderTokens_UnknownFormat(t *testing.T) {
	s := testServer()
	result, err := s.handleRenderTokens(context.Background(),
		makeRequest("render_tokens", map[string]any{"target": targetJSON, "format": "scss"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

// --- get_reference_patterns ---

func TestHandleReferencePatterns(t *testing.T) {
	s := testServer()
	result, err := s.handleReferencePatterns(context.Background(),
		makeRequest("get_reference_patterns", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var refs struct {
		GenericColors []string `json:"generic_colors"`
		GenericFonts  []string `json:"generic_fonts"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &refs))
	assert.Contains(t, refs.GenericColors, "#3b82f6")
	assert.Contains(t, refs.GenericFonts, "Inter")
}

// --- generate_tokens ---

func TestHandleGenerateTokens_NoProvider(t *testing.T) {
	s := testServer()
	result, err := s.handleGenerateTokens(context.Background(),
		makeRequest("generate_tokens", map[string]any{"brief": `{"name": "Thicket"}`}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
