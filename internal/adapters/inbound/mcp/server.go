package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSkillAuditMCPServer creates an MCP server with all skillaudit tools
// registered. The corpusPath is the root directory of the skill corpus to
// audit.
func NewSkillAuditMCPServer(corpusPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"skillaudit",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, corpusPath)

	return s
}
