package scheduling

import (
	"math"
	"time"
)

// Strategy selects which scheduling algorithm applies to a review.
// The two algorithms are independent: first-time learning deliberately
// ignores the mastery and interval machinery.
type Strategy interface {
	intervalDays(score int) int
}

// FirstTime schedules an item with no perfect-recall credit yet, using a
// simple score-band table.
type FirstTime struct{}

// Progressive schedules an item with prior perfect-recall credit through the
// mastery evaluator and the interval calculator.
type Progressive struct {
	History []HistoryEntry
}

// ResolveStrategy picks the scheduling path for an item. An item with no
// perfect-recall credit is treated as first-time learning regardless of how
// long its history is.
func ResolveStrategy(perfectRecallCount int, history []HistoryEntry) Strategy {
	if perfectRecallCount == 0 {
		return FirstTime{}
	}
	return Progressive{History: history}
}

func (FirstTime) intervalDays(score int) int {
	return int(math.Round(firstTimeBaseDays(score) * firstTimeScoreFactor(score)))
}

func (s Progressive) intervalDays(score int) int {
	return IntervalDays(MasteryLevel(score, s.History), score, s.History)
}

// Result describes a scheduling decision.
type Result struct {
	NextReview   time.Time
	IntervalDays int
}

// Schedule computes the next review date for an item. A zero lastReviewedAt
// means never reviewed, in which case the interval is added to now.
func Schedule(strategy Strategy, score int, lastReviewedAt, now time.Time) Result {
	base := lastReviewedAt
	if base.IsZero() {
		base = now
	}

	days := strategy.intervalDays(score)
	return Result{
		NextReview:   base.AddDate(0, 0, days),
		IntervalDays: days,
	}
}

// NextReviewDate is the convenience entry point combining strategy
// resolution and scheduling.
func NextReviewDate(
	score int,
	lastReviewedAt time.Time,
	perfectRecallCount int,
	history []HistoryEntry,
	now time.Time,
) time.Time {
	return Schedule(ResolveStrategy(perfectRecallCount, history), score, lastReviewedAt, now).NextReview
}

func firstTimeBaseDays(score int) float64 {
	switch {
	case score >= 95:
		return 14
	case score >= 85:
		return 10
	case score >= 75:
		return 7
	case score >= 65:
		return 5
	case score >= 55:
		return 3
	case score >= 45:
		return 2
	case score >= 35:
		return 1.5
	default:
		return 1
	}
}

func firstTimeScoreFactor(score int) float64 {
	switch {
	case score >= 90:
		return 1.2
	case score >= 80:
		return 1.1
	case score >= 70:
		return 1.0
	case score >= 60:
		return 0.9
	case score >= 50:
		return 0.8
	default:
		return 0.7
	}
}
