package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/y-oshima/kioku/internal/cli"
	"github.com/y-oshima/kioku/internal/clock"
	"github.com/y-oshima/kioku/internal/review"
)

func newStreakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current study streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return cli.RunStreakStatus(review.NewStreakStore(cfg.Storage.StreakFile), clock.SystemClock{})
		},
	}
}
