package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/k-yamane/vocamind/internal/cli"
	"github.com/k-yamane/vocamind/internal/dictionary"
)

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance commands",
	}
	cmd.AddCommand(newCatalogValidateCommand())
	cmd.AddCommand(newCatalogEnrichCommand())
	return cmd
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the level files of the word catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.RunCatalogValidate(os.Stdout, cfg.Catalog.Directory)
		},
	}
}

func newCatalogEnrichCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Fill missing phonetics, examples, synonyms, and antonyms from the dictionary API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := dictionary.NewClient(cfg.Dictionary.CacheDirectory, dictionary.Config{
				BaseURL:       cfg.Dictionary.BaseURL,
				RetryAttempts: cfg.Dictionary.RetryAttempts,
			})
			enricher := dictionary.NewEnricher(client, nil)
			return cli.RunCatalogEnrich(cmd.Context(), os.Stdout, cfg.Catalog.Directory, enricher)
		},
	}
}
