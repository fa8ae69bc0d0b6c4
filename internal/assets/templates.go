// Package assets holds embedded templates and helpers to load overrides from disk.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed report.md.go.tmpl
var reportTemplate string

// ReportTemplate returns the progress report template. When templatePath is
// empty the embedded default is used, otherwise the file at templatePath must
// exist and parse.
func ReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, "report.md.go.tmpl", reportTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	// If template path is empty, use fallback directly
	if templatePath == "" {
		tmpl, err := template.New(fallbackName).Parse(fallbackTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded template: %w", err)
		}
		return tmpl, nil
	}

	// If template path is provided, it must be valid.
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("template file not found or accessible: %w", err)
	}

	fileName := filepath.Base(templatePath)
	tmpl, err := template.New(fileName).ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", templatePath, err)
	}
	return tmpl, nil
}
