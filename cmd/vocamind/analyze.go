package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k-yamane/vocamind/internal/cli"
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze learning progress and statistics",
	}
	cmd.AddCommand(newAnalyzeReportCommand())
	return cmd
}

func newAnalyzeReportCommand() *cobra.Command {
	var userID string
	var year, month int
	var export, pdf bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show monthly/yearly report of learning statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}
			if pdf && !export {
				return fmt.Errorf("--pdf requires --export")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, cleanup, err := buildSessionService(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			opts := cli.AnalyzeReportOptions{
				UserID:    userID,
				Year:      year,
				Month:     month,
				ExportPDF: pdf,
			}
			if export {
				opts.ExportDirectory = cfg.Reports.OutputDirectory
			}
			return cli.RunAnalyzeReport(cmd.Context(), os.Stdout, svc, opts)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "user identifier")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2026)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	cmd.Flags().BoolVar(&export, "export", false, "Write a markdown report to the configured output directory")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "Also convert the exported report to PDF, requires --export")

	return cmd
}
