package scheduling

// MaxMasteryLevel is the top of the mastery scale.
const MaxMasteryLevel = 12

// History score thresholds for layered crediting. An entry may fall into
// several bands at once; the overlap is deliberate and the interval table
// was tuned against it.
const (
	excellentScore = 85
	goodScore      = 70
	fairScore      = 55
)

// MasteryLevel aggregates point contributions from the current score and the
// review history into a level in [0, 12].
//
// With an empty history only the score band applies, so a brand-new item
// caps at level 8 until it accumulates a record.
func MasteryLevel(currentScore int, history []HistoryEntry) int {
	points := scoreBandPoints(currentScore)

	if len(history) > 0 {
		points += historicalProgressPoints(history)
		points += consistencyPoints(history)
		points += improvementPoints(currentScore, history)
	}

	return clampInt(points, 0, MaxMasteryLevel)
}

func scoreBandPoints(score int) int {
	switch {
	case score >= 90:
		return 8
	case score >= 80:
		return 6
	case score >= 70:
		return 4
	case score >= 60:
		return 2
	case score >= 50:
		return 1
	default:
		return 0
	}
}

// historicalProgressPoints credits the full history, capped at 6 points.
// Bands overlap: an excellent entry also counts as good and fair.
func historicalProgressPoints(history []HistoryEntry) int {
	var excellentCount, goodCount, fairCount int
	for _, entry := range history {
		if entry.Score >= excellentScore {
			excellentCount++
		}
		if entry.Score >= goodScore {
			goodCount++
		}
		if entry.Score >= fairScore {
			fairCount++
		}
	}

	points := excellentCount*2 + goodCount + fairCount/2
	if points > 6 {
		points = 6
	}
	return points
}

// consistencyPoints rewards a stable recent average. Needs at least three
// reviews to be meaningful.
func consistencyPoints(history []HistoryEntry) int {
	if len(history) < 3 {
		return 0
	}

	average := averageScore(recent(history, 5))
	switch {
	case average >= 70:
		return 2
	case average >= 55:
		return 1
	default:
		return 0
	}
}

// improvementPoints rewards scoring above the recent average. Needs at least
// two reviews to compare against.
func improvementPoints(currentScore int, history []HistoryEntry) int {
	if len(history) < 2 {
		return 0
	}

	delta := float64(currentScore) - averageScore(recent(history, 3))
	switch {
	case delta >= 10:
		return 3
	case delta >= 5:
		return 2
	case delta >= 0:
		return 1
	default:
		return 0
	}
}
