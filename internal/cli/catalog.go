package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/k-yamane/vocamind/internal/catalog"
	"github.com/k-yamane/vocamind/internal/dictionary"
)

// RunCatalogValidate loads every level file in directory and reports
// structural problems. It returns an error when any level is invalid so the
// command exits non-zero.
func RunCatalogValidate(stdout io.Writer, directory string) error {
	c, err := catalog.Load(directory)
	if err != nil {
		return fmt.Errorf("catalog.Load(%s) > %w", directory, err)
	}

	validationErrors := c.Validate()
	if len(validationErrors) == 0 {
		color.New(color.FgGreen).Fprintf(stdout, "Catalog OK: %d levels, %d words\n", len(c.Levels()), c.Len())
		return nil
	}

	for _, ve := range validationErrors {
		color.New(color.FgRed).Fprintln(stdout, ve.String())
	}
	return fmt.Errorf("catalog validation failed with %d error(s)", len(validationErrors))
}

// RunCatalogEnrich fills missing phonetics, examples, synonyms, and antonyms
// in every level file under directory using dictionary lookups, writing
// changed files back in place.
func RunCatalogEnrich(ctx context.Context, stdout io.Writer, directory string, enricher *dictionary.Enricher) error {
	paths, err := catalog.LevelFiles(directory)
	if err != nil {
		return fmt.Errorf("catalog.LevelFiles(%s) > %w", directory, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no level files found in %s", directory)
	}

	totalUpdated := 0
	for _, path := range paths {
		level, err := catalog.LoadLevelFile(path)
		if err != nil {
			return fmt.Errorf("catalog.LoadLevelFile(%s) > %w", path, err)
		}

		updated, err := enricher.EnrichLevel(ctx, &level)
		if err != nil {
			return fmt.Errorf("enricher.EnrichLevel(%s) > %w", level.ID, err)
		}
		if updated == 0 {
			continue
		}

		if err := catalog.WriteYamlFile(path, level); err != nil {
			return fmt.Errorf("catalog.WriteYamlFile(%s) > %w", path, err)
		}
		fmt.Fprintf(stdout, "%s: enriched %d entries\n", path, updated)
		totalUpdated += updated
	}

	fmt.Fprintf(stdout, "Enriched %d entries across %d level file(s)\n", totalUpdated, len(paths))
	return nil
}
