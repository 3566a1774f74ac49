package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillaudit/skillaudit/internal/domain"
	"github.com/skillaudit/skillaudit/internal/domain/phase"
	"github.com/skillaudit/skillaudit/internal/domain/phases"
)

func newPhasesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List the registered audit phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := phases.NewRegistry(domain.DefaultConfig())

			if jsonOutput {
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
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			for _, p := range registry.All() {
				fixable := ""
				if _, ok := p.(phase.Fixer); ok {
					fixable = "  fixable"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-22s %s%s\n",
					p.Number(), p.Name(), p.Severity(), fixable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
