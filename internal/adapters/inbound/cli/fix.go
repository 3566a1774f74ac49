package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skillaudit/skillaudit/internal/adapters/outbound/config"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/parser"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/scanner"
	"github.com/skillaudit/skillaudit/internal/adapters/outbound/tui"
	"github.com/skillaudit/skillaudit/internal/application"
	"github.com/skillaudit/skillaudit/internal/domain"
)

func newFixCmd() *cobra.Command {
	var (
		dryRun     bool
		skill      string
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fix <phase> [path]",
		Short: "Apply a fix-capable phase's corrections",
		Long:  "Run one fix-capable phase over the corpus and rewrite the offending skills. With --dry-run nothing is written; the result still reports what would be fixed.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phaseNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("phase must be a number between 1 and %d", domain.PhaseCount)
			}

			path := "."
			if len(args) > 1 {
				path = args[1]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewFixService(
				scanner.New(),
				parser.New(),
				config.New(),
				newLogger(verbose),
			)

			result, err := svc.Fix(cmd.Context(), absPath, phaseNumber, domain.FixOptions{
				DryRun: dryRun,
				Skill:  skill,
			})
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.New().FixResult(result, dryRun))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be fixed without writing")
	cmd.Flags().StringVar(&skill, "skill", "", "Fix a single skill by name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
