package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/y-oshima/kioku/internal/clock"
	"github.com/y-oshima/kioku/internal/review"
	"github.com/y-oshima/kioku/internal/statistics"
	"github.com/y-oshima/kioku/internal/streak"
)

// RunStatsReport displays a study statistics report.
func RunStatsReport(ctx context.Context, repo review.Repository, goodRecallThreshold, year, month int) error {
	logs, err := repo.FindAllLogs(ctx)
	if err != nil {
		return fmt.Errorf("repo.FindAllLogs() > %w", err)
	}

	result := statistics.CalculateStatistics(logs, goodRecallThreshold, year, month)

	if len(result.Periods) == 0 {
		fmt.Println("No reviews found for the specified period.")
		return nil
	}

	fmt.Println("Study Statistics Report")
	fmt.Println("=======================")
	fmt.Println()
	fmt.Printf("%-10s  %8s  %6s  %8s  %10s\n", "Period", "Reviews", "Items", "Perfect", "Time")
	fmt.Printf("%-10s  %8s  %6s  %8s  %10s\n", "------", "-------", "-----", "-------", "----")

	for _, s := range result.Periods {
		fmt.Printf("%-10s  %8d  %6d  %8d  %10s\n",
			s.Period, s.ReviewCount, s.UniqueItems, s.PerfectRecalls, formatDuration(s.StudySeconds))
	}

	fmt.Println()
	fmt.Printf("%-10s  %8d  %6d  %8d  %10s\n",
		"Totals:",
		result.Aggregate.ReviewCount,
		result.Aggregate.UniqueItems,
		result.Aggregate.PerfectRecalls,
		formatDuration(result.Aggregate.StudySeconds),
	)

	return nil
}

// RunStreakStatus displays the current streak record.
func RunStreakStatus(store StreakStore, clk clock.Clock) error {
	state, err := store.Load()
	if err != nil {
		return fmt.Errorf("streakStore.Load() > %w", err)
	}

	active, ok := state.(streak.Active)
	if !ok {
		fmt.Println("No study streak yet. Record a review to start one.")
		return nil
	}

	// The record only changes on activity, so a streak broken since the last
	// review still shows its stored value; flag it instead of mutating state.
	gap := clock.DayDifference(active.LastActive, clk.Now())
	if gap > 1 {
		color.Red("Streak broken: last activity was %d days ago.", gap)
	} else {
		color.Green("Current streak: %d days", active.Current)
	}

	fmt.Printf("Longest streak: %d days\n", active.Longest)
	if !active.StartedAt.IsZero() {
		fmt.Printf("Streak started: %s\n", active.StartedAt.Format("2006-01-02"))
	}
	if !active.LastActive.IsZero() {
		fmt.Printf("Last activity:  %s\n", active.LastActive.Format("2006-01-02"))
	}
	return nil
}

func formatDuration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
}
