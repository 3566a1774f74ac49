package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/skillaudit/skillaudit/internal/adapters/inbound/cli"
)

// Exit codes: 0 clean audit, 1 critical content findings, 2 tool failure.
func main() {
	err := cli.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, cli.ErrCriticalIssues) {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "skillaudit:", err)
	os.Exit(2)
}
