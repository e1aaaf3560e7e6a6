package scheduling

import "math"

// masteryIntervals maps a mastery level to a base review interval in days.
// Monotonically increasing; index defensively clamped into [0, 12].
var masteryIntervals = [MaxMasteryLevel + 1]float64{
	1.0, 1.5, 2.5, 4.0, 6.0, 9.0, 13.0, 20.0, 30.0, 45.0, 65.0, 90.0, 120.0,
}

const (
	minIntervalDays = 1.0
	maxIntervalDays = 365.0
)

// IntervalDays maps a mastery level to a base interval, applies score and
// history-pattern multipliers, and clamps the result into [1, 365] days.
// The day count uses round-half-away-from-zero.
func IntervalDays(masteryLevel, score int, history []HistoryEntry) int {
	masteryLevel = clampInt(masteryLevel, 0, MaxMasteryLevel)

	rawInterval := masteryIntervals[masteryLevel] * scoreAdjustment(score) * patternAdjustment(history)
	return int(math.Round(clampFloat(rawInterval, minIntervalDays, maxIntervalDays)))
}

func scoreAdjustment(score int) float64 {
	switch {
	case score >= 95:
		return 1.3
	case score >= 85:
		return 1.2
	case score >= 75:
		return 1.1
	case score >= 65:
		return 1.05
	case score >= 55:
		return 1.0
	case score >= 45:
		return 0.95
	case score >= 35:
		return 0.9
	default:
		return 0.8
	}
}

// patternAdjustment rewards sustained recent performance: three recent
// reviews all at 65 or better earn a 10% stretch, at least two recent
// reviews all at 50 or better earn 5%.
func patternAdjustment(history []HistoryEntry) float64 {
	if len(history) == 0 {
		return 1.0
	}

	recentEntries := recent(history, 3)
	if len(recentEntries) == 3 && allScoresAtLeast(recentEntries, 65) {
		return 1.1
	}
	if len(recentEntries) >= 2 && allScoresAtLeast(recentEntries, 50) {
		return 1.05
	}
	return 1.0
}
