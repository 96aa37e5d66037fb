package commands

import (
	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
	"github.com/penwyp/go-carbon-monitor/internal/presentation/formatter"
	"github.com/spf13/cobra"
)

var outputFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a one-shot summary of the scheduler log",
	Long: `Reads the scheduler log once, runs the same simulation and aggregation as the
dashboard and prints the result.

Examples:
  go-carbon-monitor report
  go-carbon-monitor report --output summary
  go-carbon-monitor report --log ./scheduler.log --output csv > tasks.csv`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
}

func runReport(cmd *cobra.Command, args []string) error {
	setupLogging()

	f, err := formatter.NewFormatter(outputFormat)
	if err != nil {
		return err
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	orchestrator, err := dashboard.NewOrchestrator(s.dashboardConfig(), nil)
	if err != nil {
		return err
	}

	snap := orchestrator.Snapshot(cmd.Context())
	return f.Format(cmd.OutOrStdout(), formatter.NewReport(snap))
}
