package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrCriticalIssues signals that the audit ran fine but the corpus has
// critical findings. The CLI maps it to a distinct exit code from tool
// failures so operators can tell "the content is bad" from "the tool broke".
var ErrCriticalIssues = errors.New("audit found critical issues")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "skillaudit",
		Short:         "Audit a corpus of skill definitions",
		Long:          "skillaudit runs a fixed set of numbered validation phases against every skill in a corpus, reports findings by severity, and can auto-fix the mechanical ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newPhasesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newLogger(verbose bool) *log.Logger {
	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
