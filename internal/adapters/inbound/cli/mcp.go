package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/skillaudit/skillaudit/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the skillaudit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start skillaudit MCP server (stdio)",
		Long:  "Start the skillaudit MCP server using stdio transport, so AI coding assistants can audit and fix the skill corpus directly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if corpusPath == "" {
				corpusPath = "."
			}
			s := mcpadapter.NewSkillAuditMCPServer(corpusPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&corpusPath, "path", "", "Corpus path (defaults to current working directory)")

	return cmd
}
