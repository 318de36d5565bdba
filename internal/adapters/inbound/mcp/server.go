// Package mcp exposes the analysis engine over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with the oramigrate tools registered.
// projectPath is the directory batch analyses run against.
func NewServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"oramigrate",
		version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)
	return s
}
