// Package cli wires the cobra command tree around the analysis engine.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "oramigrate",
		Short:         "Estimate Oracle-to-PostgreSQL/MySQL migration complexity",
		Long:          "oramigrate scores Oracle SQL queries and PL/SQL program units on a 0-10 migration complexity scale and recommends a migration approach per object.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newBatchCmd())
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

// ParseDialect is the only string-to-dialect conversion in the repository;
// the engine itself accepts the typed value exclusively.
func ParseDialect(s string) (domain.TargetDialect, error) {
	switch s {
	case "postgresql", "postgres", "pg":
		return domain.PostgreSQL, nil
	case "mysql", "my":
		return domain.MySQL, nil
	}
	return "", fmt.Errorf("unknown target dialect %q (want postgresql or mysql)", s)
}
