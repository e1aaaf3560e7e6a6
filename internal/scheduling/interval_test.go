package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		name         string
		masteryLevel int
		score        int
		history      []HistoryEntry
		expected     int
	}{
		{
			name:         "level 8 with score 90",
			masteryLevel: 8,
			score:        90,
			expected:     36, // 30 * 1.2
		},
		{
			name:         "lowest level with failing score clamps to one day",
			masteryLevel: 0,
			score:        0,
			expected:     1, // 1 * 0.8 = 0.8, clamped up
		},
		{
			name:         "top level with top score",
			masteryLevel: 12,
			score:        100,
			expected:     156, // 120 * 1.3
		},
		{
			name:         "three strong recent reviews stretch the interval",
			masteryLevel: 9,
			score:        90,
			history:      historyWithScores(70, 80, 66),
			expected:     59, // 45 * 1.2 * 1.1 = 59.4
		},
		{
			name:         "two decent recent reviews stretch slightly",
			masteryLevel: 9,
			score:        90,
			history:      historyWithScores(52, 60),
			expected:     57, // 45 * 1.2 * 1.05 = 56.7
		},
		{
			name:         "weak recent reviews earn no stretch",
			masteryLevel: 9,
			score:        90,
			history:      historyWithScores(40, 80, 90),
			expected:     54,
		},
		{
			name:         "negative mastery level clamps to zero",
			masteryLevel: -3,
			score:        60,
			expected:     1, // 1 * 1.05
		},
		{
			name:         "mastery level above the table clamps to twelve",
			masteryLevel: 99,
			score:        60,
			expected:     126, // 120 * 1.05
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntervalDays(tt.masteryLevel, tt.score, tt.history))
		})
	}
}

func TestIntervalDays_Properties(t *testing.T) {
	histories := [][]HistoryEntry{
		nil,
		historyWithScores(70, 80, 66),
		historyWithScores(10, 20),
	}

	for _, history := range histories {
		for score := 0; score <= 100; score += 10 {
			previous := 0
			for level := 0; level <= MaxMasteryLevel; level++ {
				days := IntervalDays(level, score, history)
				assert.GreaterOrEqual(t, days, 1, "level=%d score=%d", level, score)
				assert.LessOrEqual(t, days, 365, "level=%d score=%d", level, score)
				assert.GreaterOrEqual(t, days, previous, "level=%d score=%d", level, score)
				previous = days
			}
		}
	}
}
