package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skillaudit/skillaudit/internal/adapters/outbound/config"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/gitinfo"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/parser"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/scanner"
	"github.com/skillaudit/skillaudit/internal/application"
	"github.com/skillaudit/skillaudit/internal/domain"
	"github.com/skillaudit/skillaudit/internal/domain/phase"
	"github.com/skillaudit/skillaudit/internal/domain/phases"
)

// registerTools registers all skillaudit MCP tools on the given server.
func registerTools(s *server.MCPServer, corpusPath string) {
	s.AddTool(
		mcplib.NewTool("skillaudit_audit",
			mcplib.WithDescription("Audit every skill in the corpus and return the full report as JSON"),
		),
		handleAudit(corpusPath),
	)

	s.AddTool(
		mcplib.NewTool("skillaudit_audit_skill",
			mcplib.WithDescription("Audit a single skill against every phase"),
			mcplib.WithString("skill",
				mcplib.Required(),
				mcplib.Description("Name of the skill to audit"),
			),
			mcplib.WithNumber("phase",
				mcplib.Description(fmt.Sprintf("Optional phase number (1-%d) to run alone", domain.PhaseCount)),
			),
		),
		handleAuditSkill(corpusPath),
	)

	s.AddTool(
		mcplib.NewTool("skillaudit_fix",
			mcplib.WithDescription("Run one fix-capable phase and rewrite offending skills"),
			mcplib.WithNumber("phase",
				mcplib.Required(),
				mcplib.Description("Number of the fix-capable phase to run"),
			),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would be fixed without writing")),
			mcplib.WithString("skill", mcplib.Description("Fix only the named skill")),
		),
		handleFix(corpusPath),
	)

	s.AddTool(
		mcplib.NewTool("skillaudit_phases",
			mcplib.WithDescription("List the registered audit phases with severity and fixability"),
		),
		handlePhases(),
	)
}

func newAuditService() *application.AuditService {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	return application.NewAuditService(
		scanner.New(),
		parser.New(),
		config.New(),
		gitinfo.New(),
		logger,
	)
}

func handleAudit(corpusPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAuditService().RunFull(ctx, corpusPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleAuditSkill(corpusPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		skill, err := request.RequireString("skill")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newAuditService()

		var report *domain.AuditReport
		if raw, ok := request.GetArguments()["phase"].(float64); ok {
			report, err = svc.RunPhaseForDocument(ctx, corpusPath, skill, int(raw))
		} else {
			report, err = svc.RunFullForDocument(ctx, corpusPath, skill)
		}
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleFix(corpusPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		phaseRaw, ok := request.GetArguments()["phase"].(float64)
		if !ok {
			return errorResult("phase is required"), nil
		}

		dryRun, _ := request.GetArguments()["dry_run"].(bool)
		skill, _ := request.GetArguments()["skill"].(string)

		logger := log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)
		svc := application.NewFixService(
			scanner.New(),
			parser.New(),
			config.New(),
			logger,
		)

		result, err := svc.Fix(ctx, corpusPath, int(phaseRaw), domain.FixOptions{
			DryRun: dryRun,
			Skill:  skill,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handlePhases() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		registry := phases.NewRegistry(domain.DefaultConfig())

		type phaseInfo struct {
			Number   int    `json:"number"`
			Name     string `json:"name"`
			Severity string `json:"severity"`
			Fixable  bool   `json:"fixable"`
		}
		infos := make([]phaseInfo, 0, registry.Len())
		for _, p := range registry.All() {
			_, fixable := p.(phase.Fixer)
			infos = append(infos, phaseInfo{
				Number:   p.Number(),
				Name:     p.Name(),
				Severity: p.Severity(),
				Fixable:  fixable,
			})
		}
		return jsonResult(infos)
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
