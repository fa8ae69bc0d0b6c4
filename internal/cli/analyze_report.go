package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/k-yamane/vocamind/internal/learning"
	"github.com/k-yamane/vocamind/internal/mission"
	"github.com/k-yamane/vocamind/internal/report"
	"github.com/k-yamane/vocamind/internal/session"
	"github.com/k-yamane/vocamind/internal/statistics"
)

// AnalyzeReportOptions controls RunAnalyzeReport.
type AnalyzeReportOptions struct {
	UserID string
	Year   int
	Month  int
	// ExportDirectory, when set, additionally writes a markdown report there.
	ExportDirectory string
	// ExportPDF converts the exported markdown to PDF as well.
	ExportPDF bool
}

// RunAnalyzeReport prints learning statistics for a user and optionally
// exports them as a markdown/PDF report.
func RunAnalyzeReport(ctx context.Context, stdout io.Writer, svc *session.Service, opts AnalyzeReportOptions) error {
	records, err := svc.MissionsForUser(ctx, opts.UserID)
	if err != nil {
		return fmt.Errorf("svc.MissionsForUser() > %w", err)
	}
	statesByWord, err := svc.WordStatesForUser(ctx, opts.UserID)
	if err != nil {
		return fmt.Errorf("svc.WordStatesForUser() > %w", err)
	}

	missions := make([]mission.Mission, 0, len(records))
	for _, record := range records {
		missions = append(missions, record.Mission)
	}

	var states []learning.WordState
	for _, state := range statesByWord {
		states = append(states, state)
	}

	result := statistics.CalculateStatistics(missions, states, opts.Year, opts.Month)

	if len(result.Periods) == 0 {
		fmt.Fprintln(stdout, "No completed missions found for the specified period.")
	} else {
		printStatistics(stdout, result)
	}

	if opts.ExportDirectory == "" {
		return nil
	}

	stats, err := svc.StatsForUser(ctx, opts.UserID)
	if err != nil {
		return fmt.Errorf("svc.StatsForUser() > %w", err)
	}
	summary := report.Summary{
		UserID:            opts.UserID,
		XP:                stats.XP,
		Streak:            stats.Streak,
		MissionsCompleted: stats.MissionsCompleted,
	}
	mdPath, err := report.Write(opts.ExportDirectory, summary, result, time.Now())
	if err != nil {
		return fmt.Errorf("report.Write() > %w", err)
	}
	fmt.Fprintf(stdout, "\nReport written to %s\n", mdPath)

	if opts.ExportPDF {
		pdfPath, err := report.ConvertMarkdownToPDF(mdPath)
		if err != nil {
			return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
		}
		fmt.Fprintf(stdout, "PDF written to %s\n", pdfPath)
	}
	return nil
}

func printStatistics(stdout io.Writer, result statistics.Result) {
	fmt.Fprintln(stdout, "Learning Statistics Report")
	fmt.Fprintln(stdout, "==========================")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%-10s  %-10s  %-10s  %-10s  %-8s\n", "Period", "Missions", "Correct", "Accuracy", "XP")
	fmt.Fprintf(stdout, "%-10s  %-10s  %-10s  %-10s  %-8s\n", "------", "--------", "-------", "--------", "--")

	for _, s := range result.Periods {
		fmt.Fprintf(stdout, "%-10s  %-10d  %-10s  %-10s  %-8d\n",
			s.Period,
			s.MissionsCompleted,
			fmt.Sprintf("%d / %d", s.CorrectAnswers, s.QuestionsAnswered),
			fmt.Sprintf("%.1f%%", s.AccuracyPercent),
			s.XPEarned,
		)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%-10s  %-10d  %-10s  %-10s  %-8d\n",
		"Totals:",
		result.Aggregate.MissionsCompleted,
		fmt.Sprintf("%d / %d", result.Aggregate.CorrectAnswers, result.Aggregate.QuestionsAnswered),
		fmt.Sprintf("%.1f%%", result.Aggregate.AccuracyPercent),
		result.Aggregate.XPEarned,
	)
	fmt.Fprintf(stdout, "\nWords: %d learning, %d review, %d mastered\n",
		result.Aggregate.LearningWords, result.Aggregate.ReviewWords, result.Aggregate.MasteredWords)
}
