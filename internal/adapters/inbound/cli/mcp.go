package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/syntropysoft/praetorian-go/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Praetorian MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var workspacePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start Praetorian MCP server (stdio)",
		Long:  "Start the Praetorian MCP server using stdio transport. This lets AI coding assistants validate configurations, audit workspaces and scan for secrets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workspacePath == "" {
				workspacePath = "."
			}
			s := mcpadapter.NewPraetorianMCPServer(workspacePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&workspacePath, "path", "", "Workspace path (defaults to current working directory)")
	return cmd
}
