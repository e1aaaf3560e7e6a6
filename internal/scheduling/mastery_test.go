package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func historyWithScores(scores ...int) []HistoryEntry {
	reviewedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]HistoryEntry, 0, len(scores))
	for i, score := range scores {
		entries = append(entries, HistoryEntry{
			Score:      score,
			ReviewedAt: reviewedAt.AddDate(0, 0, -i),
		})
	}
	return entries
}

func TestMasteryLevel(t *testing.T) {
	tests := []struct {
		name         string
		currentScore int
		history      []HistoryEntry
		expected     int
	}{
		{
			name:         "new item with top score caps at 8",
			currentScore: 95,
			expected:     8,
		},
		{
			name:         "new item with score 85",
			currentScore: 85,
			expected:     6,
		},
		{
			name:         "new item with failing score",
			currentScore: 40,
			expected:     0,
		},
		{
			name:         "single low history entry adds nothing",
			currentScore: 55,
			history:      historyWithScores(50),
			expected:     1,
		},
		{
			name:         "two entries earn improvement points only",
			currentScore: 75,
			history:      historyWithScores(60, 60),
			// band 4, progress fair 2/2 = 1, improvement delta 15 = 3
			expected: 8,
		},
		{
			name:         "strong history saturates the scale",
			currentScore: 90,
			history:      historyWithScores(88, 75, 92),
			expected:     12,
		},
		{
			name:         "layered crediting counts one entry in several bands",
			currentScore: 0,
			history:      historyWithScores(90),
			// excellent 2 + good 1 + fair 0 (1/2 truncates) = 3, nothing else
			expected: 3,
		},
		{
			name:         "out of range score clamps into top band",
			currentScore: 140,
			expected:     8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MasteryLevel(tt.currentScore, tt.history))
		})
	}
}

func TestMasteryLevel_MonotonicInScore(t *testing.T) {
	histories := [][]HistoryEntry{
		nil,
		historyWithScores(50),
		historyWithScores(88, 75, 92, 60, 70),
	}

	for _, history := range histories {
		previous := 0
		for score := 0; score <= 100; score++ {
			level := MasteryLevel(score, history)
			assert.GreaterOrEqual(t, level, previous, "score=%d", score)
			assert.GreaterOrEqual(t, level, 0)
			assert.LessOrEqual(t, level, MaxMasteryLevel)
			previous = level
		}
	}
}
