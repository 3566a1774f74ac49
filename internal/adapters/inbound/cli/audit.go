package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillaudit/skillaudit/internal/adapters/outbound/config"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/gitinfo"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/parser"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/scanner"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/tui"
	"github.com/skillaudit/skillaudit/internal/application"
	"github.com/skillaudit/skillaudit/internal/domain"
	"github.com/skillaudit/skillaudit/internal/domain/phases"
)

func newAuditCmd() *cobra.Command {
	var (
		skill       string
		phaseNumber int
		jsonOutput  bool
		quiet       bool
		verbose     bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Run the audit phases against the corpus",
		Long:  "Audit every skill under the corpus root (or a single skill with --skill, or one phase with --phase) and report findings by severity.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if phaseNumber != 0 && skill == "" {
				return fmt.Errorf("--phase requires --skill")
			}

			svc := application.NewAuditService(
				scanner.New(),
				parser.New(),
				config.New(),
				gitinfo.New(),
				newLogger(verbose),
			)

			ctx := cmd.Context()
			var report *domain.AuditReport
			switch {
			case phaseNumber != 0:
				report, err = svc.RunPhaseForDocument(ctx, absPath, skill, phaseNumber)
			case skill != "":
				report, err = svc.RunFullForDocument(ctx, absPath, skill)
			default:
				report, err = svc.RunFull(ctx, absPath)
			}
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				renderer := tui.New()
				switch {
				case quiet || output == "summary":
					fmt.Fprint(cmd.OutOrStdout(), renderer.Summary(report))
				case output == "table":
					// Advice strings are static per phase, so the default
					// config is fine for the fallback lookup.
					registry := phases.NewRegistry(domain.DefaultConfig())
					fmt.Fprint(cmd.OutOrStdout(), renderer.Table(report.Structured(registry.Advice)))
					fmt.Fprint(cmd.OutOrStdout(), renderer.Summary(report))
				default:
					fmt.Fprint(cmd.OutOrStdout(), renderer.Verbose(report))
				}
			}

			if !report.Passed() {
				return ErrCriticalIssues
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&skill, "skill", "", "Audit a single skill by name")
	cmd.Flags().IntVar(&phaseNumber, "phase", 0, fmt.Sprintf("Run a single phase (1-%d, requires --skill)", domain.PhaseCount))
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Show only aggregate severity counts")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().StringVarP(&output, "output", "o", "verbose", "Output mode: summary, verbose, or table")

	return cmd
}
