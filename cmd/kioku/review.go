package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/y-oshima/kioku/internal/cli"
	"github.com/y-oshima/kioku/internal/clock"
	"github.com/y-oshima/kioku/internal/review"
)

func newReviewCommand() *cobra.Command {
	var score int

	cmd := &cobra.Command{
		Use:   "review <item id>",
		Short: "Record a review of an item and schedule the next one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if score > 100 {
				return fmt.Errorf("--score must be between 0 and 100")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repo, closeRepo, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			runner := cli.NewReviewRunner(
				repo,
				review.NewStreakStore(cfg.Storage.StreakFile),
				clock.SystemClock{},
				cfg.Study.GoodRecallThreshold,
				os.Stdin,
			)
			outcome, err := runner.Run(cmd.Context(), args[0], score)
			if err != nil {
				return fmt.Errorf("failed to record the review: %w", err)
			}

			cli.PrintOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", -1, "Recall score (0-100); prompts on stdin when omitted")

	return cmd
}
