package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/report"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/tui"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/application"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		targetFlag string
		jsonOutput bool
		forceSQL   bool
		forcePLSQL bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Score a single SQL query or PL/SQL program unit",
		Long:  "Analyze one source file (or stdin when the file is -) and print its migration complexity. The input is routed to the SQL or PL/SQL pipeline based on its content unless --sql or --plsql forces a pipeline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if forceSQL && forcePLSQL {
				return fmt.Errorf("--sql and --plsql are mutually exclusive")
			}
			target, err := ParseDialect(targetFlag)
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			text := string(data)

			kind := application.SniffKind(text)
			if forceSQL {
				kind = domain.SourceSQL
			}
			if forcePLSQL {
				kind = domain.SourcePLSQL
			}

			analyzer := application.NewAnalyzer()
			switch kind {
			case domain.SourceSQL:
				res, err := analyzer.AnalyzeSQL(text, target)
				if err != nil {
					return fmt.Errorf("analyzing %s: %w", args[0], err)
				}
				return printResult(cmd, res, jsonOutput, tui.RenderSQL(res))
			default:
				res, err := analyzer.AnalyzePLSQL(text, target)
				if err != nil {
					return fmt.Errorf("analyzing %s: %w", args[0], err)
				}
				return printResult(cmd, res, jsonOutput, tui.RenderPLSQL(res))
			}
		},
	}

	cmd.Flags().StringVarP(&targetFlag, "target", "t", "postgresql", "Target dialect: postgresql or mysql")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&forceSQL, "sql", false, "Force the SQL pipeline")
	cmd.Flags().BoolVar(&forcePLSQL, "plsql", false, "Force the PL/SQL pipeline")
	return cmd
}

func printResult(cmd *cobra.Command, v any, asJSON bool, rendered string) error {
	if asJSON {
		out, err := report.JSON(v)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
