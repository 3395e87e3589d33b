package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPraetorianMCPServer creates a new MCP server with all Praetorian
// tools and resources registered. The workspacePath is the directory
// holding praetorian.yaml.
func NewPraetorianMCPServer(workspacePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"praetorian",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workspacePath)
	registerResources(s, workspacePath)

	return s
}
