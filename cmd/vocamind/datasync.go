package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k-yamane/vocamind/internal/database"
	"github.com/k-yamane/vocamind/internal/datasync"
	"github.com/k-yamane/vocamind/internal/dictionary"
)

func newDatasyncCommand() *cobra.Command {
	var source, target string
	var dryRun, withDictionary bool

	cmd := &cobra.Command{
		Use:   "datasync",
		Short: "Copy learner progress between storage backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == target {
				return fmt.Errorf("--source and --target must differ")
			}
			if !isValidBackend(source) || !isValidBackend(target) {
				return fmt.Errorf("--source and --target must be one of: file, mysql")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sourceStore, sourceCleanup, err := buildStore(cmd.Context(), cfg, source)
			if err != nil {
				return err
			}
			defer sourceCleanup()

			targetStore, targetCleanup, err := buildStore(cmd.Context(), cfg, target)
			if err != nil {
				return err
			}
			defer targetCleanup()

			syncer := datasync.NewSyncer(sourceStore, targetStore, os.Stdout)
			result, err := syncer.Sync(cmd.Context(), datasync.Options{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("syncer.Sync() > %w", err)
			}

			fmt.Printf("Synced %s to %s: %d keys copied, %d skipped.\n",
				source, target, result.KeysCopied, result.KeysSkipped)

			if withDictionary {
				db, err := database.Open(cfg.Database)
				if err != nil {
					return fmt.Errorf("database.Open() > %w", err)
				}
				defer func() {
					_ = db.Close()
				}()
				if err := database.Migrate(cmd.Context(), db); err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}

				cache := dictionary.NewFileCache(cfg.Dictionary.CacheDirectory)
				importer := datasync.NewDictionaryImporter(cache, dictionary.NewDBRepository(db), os.Stdout)
				dictResult, err := importer.Import(cmd.Context(), datasync.Options{DryRun: dryRun})
				if err != nil {
					return fmt.Errorf("importer.Import() > %w", err)
				}
				fmt.Printf("Dictionary cache: %d entries copied, %d skipped.\n",
					dictResult.KeysCopied, dictResult.KeysSkipped)
			}

			if dryRun {
				fmt.Println("Dry run: nothing was written.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "file", "Backend to read from (file or mysql)")
	cmd.Flags().StringVar(&target, "target", "mysql", "Backend to write to (file or mysql)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be copied without writing")
	cmd.Flags().BoolVar(&withDictionary, "dictionary", false, "Also copy the dictionary API file cache into MySQL")

	return cmd
}

func isValidBackend(backend string) bool {
	return backend == "file" || backend == "mysql"
}
