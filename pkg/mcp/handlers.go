package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/brandlint/pkg/generator"
	"github.com/gnana997/brandlint/pkg/migration"
	"github.com/gnana997/brandlint/pkg/patterns"
	"github.com/gnana997/brandlint/pkg/scanner"
	"github.com/gnana997/brandlint/pkg/tokens"
)

func (s *Server) handleScanTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'text' is missing or invalid"), nil
	}

	sr := scanner.ScanCSS(text)
	return jsonResult(sr)
}

func (s *Server) handleAnalyzeStyles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'text' is missing or invalid"), nil
	}

	report := patterns.Analyze(text)
	return jsonResult(report)
}

func (s *Server) handleAnalyzeProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := request.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'root' is missing or invalid"), nil
	}

	report, err := s.analyzer.AnalyzeDir(root)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze project: %s", err.Error())), nil
	}
	return jsonResult(report)
}

func (s *Server) handleBuildMigration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current, err := request.RequireString("current")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'current' is missing or invalid"), nil
	}
	targetJSON, err := request.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'target' is missing or invalid"), nil
	}

	var target tokens.TokenSet
	if err := json.Unmarshal([]byte(targetJSON), &target); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("target is not a valid token set: %s", err.Error())), nil
	}
	if !target.Complete() {
		return mcp.NewToolResultError("target token set is incomplete: all six color roles and both font roles are required"), nil
	}

	preserve := migration.Preserve{
		Colors: splitList(request.GetString("preserve_colors", "")),
		Fonts:  splitList(request.GetString("preserve_fonts", "")),
	}

	// Token extraction goes through the analyzer so synthesized color
	// keys and font dedup match a project analysis of the same text.
	report := s.analyzer.AnalyzeFiles(map[string]string{"input.css": current})
	m := migration.Build(report.ExtractedTokens, &target, preserve)

	if request.GetBool("script", false) {
		return mcp.NewToolResultText(migration.RenderScript(m)), nil
	}
	return jsonResult(m)
}

func (s *Server) handleRenderTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	targetJSON, err := request.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'target' is missing or invalid"), nil
	}

	var target tokens.TokenSet
	if err := json.Unmarshal([]byte(targetJSON), &target); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("target is not a valid token set: %s", err.Error())), nil
	}

	switch format := request.GetString("format", "json"); format {
	case "css":
		return mcp.NewToolResultText(tokens.RenderCSS(&target)), nil
	case "tailwind":
		return mcp.NewToolResultText(tokens.RenderTailwind(&target)), nil
	case "json":
		doc := tokens.BuildDocument(request.GetString("brand", ""), &target)
		out, err := doc.RenderJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to render tokens: %s", err.Error())), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q: must be json, css, or tailwind", format)), nil
	}
}

func (s *Server) handleReferencePatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"generic_colors": patterns.GenericColors,
		"generic_fonts":  patterns.GenericFonts,
	})
}

func (s *Server) handleGenerateTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.generator == nil {
		return mcp.NewToolResultError("token generation is not configured: no model provider available"), nil
	}

	briefJSON, err := request.RequireString("brief")
	if err != nil {
		return mcp.NewToolResultError("required parameter 'brief' is missing or invalid"), nil
	}

	var brief generator.BrandBrief
	if err := json.Unmarshal([]byte(briefJSON), &brief); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("brief is not valid JSON: %s", err.Error())), nil
	}

	set, err := s.generator.GenerateTokenSet(ctx, brief)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to generate tokens: %s", err.Error())), nil
	}
	return jsonResult(set)
}

// jsonResult marshals v as the text content of a successful tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("Failed to serialize response"), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// splitList parses a comma-separated parameter into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
