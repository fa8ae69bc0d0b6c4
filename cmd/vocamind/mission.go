package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/k-yamane/vocamind/internal/bootstrap"
	"github.com/k-yamane/vocamind/internal/catalog"
	"github.com/k-yamane/vocamind/internal/cli"
	"github.com/k-yamane/vocamind/internal/config"
	"github.com/k-yamane/vocamind/internal/database"
	"github.com/k-yamane/vocamind/internal/mission"
	"github.com/k-yamane/vocamind/internal/session"
	"github.com/k-yamane/vocamind/internal/storage"
)

func newMissionCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Play today's daily mission",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			svc, cleanup, err := buildSessionService(cmd.Context(), cfg, app)
			if err != nil {
				return err
			}
			defer cleanup()

			runner := cli.NewMissionCLI(svc, userID, os.Stdin, os.Stdout)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				return runner.Run(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "default", "user identifier")
	return cmd
}

// buildSessionService wires the catalog, progress store, planner, and session
// service from configuration. The returned cleanup closes the database
// connection for the mysql backend.
func buildSessionService(ctx context.Context, cfg *config.Config, app *bootstrap.App) (*session.Service, func(), error) {
	c, err := catalog.Load(cfg.Catalog.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog.Load(%s) > %w", cfg.Catalog.Directory, err)
	}

	store, cleanup, err := buildStore(ctx, cfg, cfg.Storage.Backend)
	if err != nil {
		return nil, nil, err
	}

	planner := mission.NewPlanner(
		catalog.NewHeuristicPosTagger(),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		mission.WithTargetQuestions(cfg.Mission.TargetQuestions),
		mission.WithXPPerQuestion(cfg.Mission.XPPerQuestion),
	)
	svc := session.NewService(store, c, planner)

	if app != nil {
		app.AddShutdownHook(func(ctx context.Context) error {
			cleanup()
			return nil
		})
	}
	return svc, cleanup, nil
}

func buildStore(ctx context.Context, cfg *config.Config, backend string) (storage.Store, func(), error) {
	switch backend {
	case "mysql":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
		}
		store := storage.NewDBStore(db)
		// Cleanup runs from both defer and the shutdown hook; close once.
		var once sync.Once
		return store, func() {
			once.Do(func() { _ = db.Close() })
		}, nil
	default:
		store, err := storage.NewFileStore(cfg.Storage.Directory)
		if err != nil {
			return nil, nil, fmt.Errorf("storage.NewFileStore(%s) > %w", cfg.Storage.Directory, err)
		}
		return store, func() {}, nil
	}
}
