// Package report renders learner progress as markdown and exports it to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/k-yamane/vocamind/internal/assets"
	"github.com/k-yamane/vocamind/internal/statistics"
)

// Summary is the header block of a progress report.
type Summary struct {
	UserID            string
	XP                int
	Streak            int
	MissionsCompleted int
}

type reportData struct {
	Summary       Summary
	Result        statistics.Result
	GeneratedDate string
}

// RenderMarkdown renders a full progress report. generatedAt is injected so
// reports are reproducible.
func RenderMarkdown(summary Summary, result statistics.Result, generatedAt time.Time) (string, error) {
	tmpl, err := assets.ReportTemplate("")
	if err != nil {
		return "", fmt.Errorf("assets.ReportTemplate() > %w", err)
	}

	var b strings.Builder
	data := reportData{
		Summary:       summary,
		Result:        result,
		GeneratedDate: generatedAt.Format("2006-01-02"),
	}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return b.String(), nil
}

// Write renders the report and writes it to directory as
// <userID>-report-<date>.md, returning the markdown path.
func Write(directory string, summary Summary, result statistics.Result, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	contents, err := RenderMarkdown(summary, result, generatedAt)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-report-%s.md", summary.UserID, generatedAt.Format("2006-01-02"))
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
