package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/config"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/gitinfo"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/history"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/report"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/scanner"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/tui"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/application"
)

func newBatchCmd() *cobra.Command {
	var (
		targetFlag  string
		jsonOutput  bool
		markdownOut string
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "batch [path]",
		Short: "Score every Oracle source file under a directory",
		Long:  "Walk a directory, score each SQL and PL/SQL file against the target dialect, and print a roll-up. Defaults come from .oramigrate.yaml when present.",
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

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("target") && cfg.Target != "" {
				targetFlag = cfg.Target
			}
			target, err := ParseDialect(targetFlag)
			if err != nil {
				return err
			}

			if showHistory {
				hist, err := history.Open(absPath)
				if err != nil {
					return fmt.Errorf("opening history: %w", err)
				}
				defer hist.Close()
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			svc := application.NewAnalyzeService(scanner.New())
			batch, err := svc.AnalyzeProject(cmd.Context(), absPath, target, cfg.ExcludePaths...)
			if err != nil {
				return fmt.Errorf("batch analysis failed: %w", err)
			}

			gi := gitinfo.New()
			if gi.IsGitRepo(absPath) {
				if hash, err := gi.CommitHash(absPath); err == nil {
					batch.CommitHash = hash
				}
			}

			if cfg.HistoryEnabled() {
				if hist, err := history.Open(absPath); err == nil {
					_ = hist.Save(absPath, application.RunEntries(batch)) // best-effort
					hist.Close()
				}
			}

			if markdownOut != "" {
				if err := os.WriteFile(markdownOut, []byte(report.Markdown(batch)), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", markdownOut)
			}

			if jsonOutput {
				out, err := report.BatchJSON(batch)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBatch(batch))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetFlag, "target", "t", "postgresql", "Target dialect: postgresql or mysql")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the batch result as JSON")
	cmd.Flags().StringVar(&markdownOut, "report", "", "Also write a Markdown report to this path")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show persisted runs instead of analyzing")
	return cmd
}
