package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/config"
	"github.com/syntropysoft/praetorian-go/internal/application"
)

// registerResources registers all Praetorian MCP resources on the given server.
func registerResources(s *server.MCPServer, workspacePath string) {
	// praetorian://config - the raw workspace configuration
	s.AddResource(
		mcplib.NewResource(
			"praetorian://config",
			"Workspace Configuration",
			mcplib.WithResourceDescription("The workspace's praetorian.yaml as written"),
			mcplib.WithMIMEType("application/yaml"),
		),
		handleConfigResource(workspacePath),
	)

	// praetorian://result - latest validation result
	s.AddResource(
		mcplib.NewResource(
			"praetorian://result",
			"Validation Result",
			mcplib.WithResourceDescription("Result of validating the workspace right now"),
			mcplib.WithMIMEType("application/json"),
		),
		handleResultResource(workspacePath),
	)

	// praetorian://health - workspace readiness
	s.AddResource(
		mcplib.NewResource(
			"praetorian://health",
			"Workspace Health",
			mcplib.WithResourceDescription("Readiness checks for the workspace"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHealthResource(workspacePath),
	)
}

func handleConfigResource(workspacePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := os.ReadFile(filepath.Join(workspacePath, "praetorian.yaml"))
		if err != nil {
			return nil, fmt.Errorf("reading praetorian.yaml: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "praetorian://config",
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	}
}

func handleResultResource(workspacePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		result, err := newValidateService().Validate(workspacePath)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "praetorian://result",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHealthResource(workspacePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report := application.NewHealthService(config.New()).Check(workspacePath)

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "praetorian://health",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
