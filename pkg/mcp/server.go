// Package mcp exposes the brandlint pipeline over the Model Context
// Protocol so coding agents can score and migrate the styles they
// generate.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/brandlint/pkg/analyzer"
	"github.com/gnana997/brandlint/pkg/generator"
	"github.com/gnana997/brandlint/pkg/mcplog"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for brandlint, exposing scan,
// analysis, migration and token-rendering tools.
type Server struct {
	mcpServer *server.MCPServer
	analyzer  *analyzer.Analyzer
	generator *generator.Generator // may be nil when no API key is configured
	logger    *mcplog.Logger       // may be nil — disables call logging
}

// NewServer creates an MCP server backed by the given analyzer and
// optional generator.
func NewServer(a *analyzer.Analyzer, g *generator.Generator, logger *mcplog.Logger) *Server {
	s := &Server{analyzer: a, generator: g, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("brandlint", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: scanTokensTool(), Handler: s.handleScanTokens},
		server.ServerTool{Tool: analyzeStylesTool(), Handler: s.handleAnalyzeStyles},
		server.ServerTool{Tool: analyzeProjectTool(), Handler: s.handleAnalyzeProject},
		server.ServerTool{Tool: buildMigrationTool(), Handler: s.handleBuildMigration},
		server.ServerTool{Tool: renderTokensTool(), Handler: s.handleRenderTokens},
		server.ServerTool{Tool: referencePatternsTool(), Handler: s.handleReferencePatterns},
		server.ServerTool{Tool: generateTokensTool(), Handler: s.handleGenerateTokens},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
