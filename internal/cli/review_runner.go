// Package cli implements the interactive runners behind the commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/y-oshima/kioku/internal/clock"
	"github.com/y-oshima/kioku/internal/review"
	"github.com/y-oshima/kioku/internal/scheduling"
	"github.com/y-oshima/kioku/internal/session"
	"github.com/y-oshima/kioku/internal/streak"
)

//go:generate mockgen -source=review_runner.go -destination=../mocks/cli/mock_streak_store.go -package=mock_cli StreakStore

// StreakStore persists the streak record between runs.
type StreakStore interface {
	Load() (streak.State, error)
	Save(state streak.State) error
}

// ReviewRunner records a review sitting: it times the session, asks for the
// self-reported recall score, runs the scheduling engine and persists the
// results.
type ReviewRunner struct {
	repo                review.Repository
	streakStore         StreakStore
	clk                 clock.Clock
	sessions            *session.Tracker
	goodRecallThreshold int
	stdinReader         *bufio.Reader
}

// NewReviewRunner creates a runner. stdin is only read when no score is
// passed on the command line.
func NewReviewRunner(
	repo review.Repository,
	streakStore StreakStore,
	clk clock.Clock,
	goodRecallThreshold int,
	stdin io.Reader,
) *ReviewRunner {
	return &ReviewRunner{
		repo:                repo,
		streakStore:         streakStore,
		clk:                 clk,
		sessions:            session.NewTracker(clk),
		goodRecallThreshold: goodRecallThreshold,
		stdinReader:         bufio.NewReader(stdin),
	}
}

// ReviewOutcome summarizes one recorded review for display.
type ReviewOutcome struct {
	Item            *review.Item
	Retention       int
	MasteryLevel    int
	IntervalDays    int
	NextReview      time.Time
	DurationSeconds int64
	Streak          streak.State
}

// Run records a review of the given item. A negative score means "ask on
// stdin". The session timer covers the time the learner spends answering.
func (r *ReviewRunner) Run(ctx context.Context, itemID string, score int) (*ReviewOutcome, error) {
	item, err := r.repo.FindItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindItem() > %w", err)
	}
	if item == nil {
		item = &review.Item{ID: itemID}
	}

	history, err := r.repo.History(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("repo.History() > %w", err)
	}

	sessionID := r.sessions.Start()
	if score < 0 {
		score, err = r.promptScore(itemID)
		if err != nil {
			r.sessions.End(sessionID)
			return nil, err
		}
	}
	durationSeconds := r.sessions.End(sessionID)

	now := r.clk.Now()
	strategy := scheduling.ResolveStrategy(item.PerfectRecallCount, history)
	scheduled := scheduling.Schedule(strategy, score, item.LastReviewedAt, now)

	retention := scheduling.EnhancedRetention(
		score,
		scheduling.DaysSinceLastReview(item.LastReviewedAt, now),
		len(history),
		scheduling.HighScoreCount(history, r.goodRecallThreshold),
	)

	item.Score = score
	if score >= r.goodRecallThreshold {
		item.PerfectRecallCount++
	}
	item.LastReviewedAt = now
	item.NextReviewAt = scheduled.NextReview

	if err := r.repo.AppendLog(ctx, &review.ReviewLog{
		ItemID:          itemID,
		Score:           score,
		ReviewedAt:      now,
		DurationSeconds: durationSeconds,
		IntervalDays:    scheduled.IntervalDays,
	}); err != nil {
		return nil, fmt.Errorf("repo.AppendLog() > %w", err)
	}
	if err := r.repo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("repo.SaveItem() > %w", err)
	}

	streakState, err := r.recordStreakActivity()
	if err != nil {
		return nil, err
	}

	return &ReviewOutcome{
		Item:            item,
		Retention:       retention,
		MasteryLevel:    scheduling.MasteryLevel(score, history),
		IntervalDays:    scheduled.IntervalDays,
		NextReview:      scheduled.NextReview,
		DurationSeconds: durationSeconds,
		Streak:          streakState,
	}, nil
}

func (r *ReviewRunner) recordStreakActivity() (streak.State, error) {
	persisted, err := r.streakStore.Load()
	if err != nil {
		return nil, fmt.Errorf("streakStore.Load() > %w", err)
	}

	tracker := streak.NewTracker(r.clk, persisted)
	state := tracker.RecordActivity()

	if err := r.streakStore.Save(state); err != nil {
		return nil, fmt.Errorf("streakStore.Save() > %w", err)
	}
	return state, nil
}

func (r *ReviewRunner) promptScore(itemID string) (int, error) {
	for {
		fmt.Printf("Recall score for %s (0-100): ", itemID)
		line, err := r.stdinReader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("error reading score input: %w", err)
		}

		score, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || score < 0 || score > 100 {
			fmt.Println("Please enter a number between 0 and 100.")
			continue
		}
		return score, nil
	}
}

// PrintOutcome displays a recorded review.
func PrintOutcome(outcome *ReviewOutcome) {
	if outcome.Item.Score >= 80 {
		color.Green("Recorded score %d for %s", outcome.Item.Score, outcome.Item.ID)
	} else if outcome.Item.Score >= 50 {
		color.Yellow("Recorded score %d for %s", outcome.Item.Score, outcome.Item.ID)
	} else {
		color.Red("Recorded score %d for %s", outcome.Item.Score, outcome.Item.ID)
	}

	fmt.Printf("Retention estimate: %d%%\n", outcome.Retention)
	fmt.Printf("Mastery level:      %d / %d\n", outcome.MasteryLevel, scheduling.MaxMasteryLevel)
	fmt.Printf("Session duration:   %ds\n", outcome.DurationSeconds)
	fmt.Printf("Next review in %d days (%s)\n", outcome.IntervalDays, outcome.NextReview.Format("2006-01-02"))

	if active, ok := outcome.Streak.(streak.Active); ok {
		fmt.Printf("Streak: %d days (longest %d)\n", active.Current, active.Longest)
	}
}
