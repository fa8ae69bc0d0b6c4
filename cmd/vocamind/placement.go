package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/k-yamane/vocamind/internal/catalog"
	"github.com/k-yamane/vocamind/internal/cli"
	"github.com/k-yamane/vocamind/internal/placement"
)

func newPlacementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "placement",
		Short: "Take the placement test to find your starting level",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			c, err := catalog.Load(cfg.Catalog.Directory)
			if err != nil {
				return fmt.Errorf("catalog.Load(%s) > %w", cfg.Catalog.Directory, err)
			}

			engine := placement.NewEngine(
				catalog.NewHeuristicPosTagger(),
				rand.New(rand.NewSource(time.Now().UnixNano())),
			)
			runner := cli.NewPlacementCLI(engine, c, os.Stdin, os.Stdout)
			_, err = runner.Run()
			return err
		},
	}
}
