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
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/gitinfo"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/loader"
	"github.com/syntropysoft/praetorian-go/internal/application"
	"github.com/syntropysoft/praetorian-go/internal/domain/security"
)

// registerTools registers all Praetorian MCP tools on the given server.
func registerTools(s *server.MCPServer, workspacePath string) {
	s.AddTool(
		mcplib.NewTool("praetorian_validate",
			mcplib.WithDescription("Validate the workspace's configuration files: key consistency, schema and pattern rules, security posture. Returns the full result as JSON."),
			mcplib.WithBoolean("strict", mcplib.Description("Fail on errors even if the config says otherwise")),
		),
		handleValidate(workspacePath),
	)

	s.AddTool(
		mcplib.NewTool("praetorian_audit",
			mcplib.WithDescription("Run a full validation and condense it into a 0-100 score with a letter grade, pinned to the current git commit."),
		),
		handleAudit(workspacePath),
	)

	s.AddTool(
		mcplib.NewTool("praetorian_health",
			mcplib.WithDescription("Check the workspace is ready to validate: config loads, files exist, patterns compile."),
		),
		handleHealth(workspacePath),
	)

	s.AddTool(
		mcplib.NewTool("praetorian_scan_secrets",
			mcplib.WithDescription("Scan a single file for secrets using the built-in detection rules. Returns masked matches with confidence scores."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to scan, relative to the workspace"),
			),
		),
		handleScanSecrets(workspacePath),
	)
}

func newValidateService() *application.ValidateService {
	return application.NewValidateService(config.New(), loader.New())
}

func handleValidate(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(workspacePath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if strict, ok := request.GetArguments()["strict"].(bool); ok && strict {
			cfg.Strict = true
		}

		result, err := newValidateService().ValidateWithConfig(workspacePath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleAudit(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewAuditService(newValidateService(), gitinfo.New())
		report, err := svc.Audit(workspacePath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleHealth(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report := application.NewHealthService(config.New()).Check(workspacePath)
		return jsonResult(report)
	}
}

func handleScanSecrets(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(workspacePath, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errorResult(fmt.Sprintf("reading file: %v", err)), nil
		}

		matches := security.DetectSecrets(string(data), security.DefaultRules())
		type scanResult struct {
			File    string                 `json:"file"`
			Matches []security.SecretMatch `json:"matches"`
		}
		return jsonResult(scanResult{File: file, Matches: matches})
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
