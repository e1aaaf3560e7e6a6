package scheduling

import "time"

// HistoryEntry is a single past review of an item.
// Callers supply history ordered most-recent-first; the engine only ever
// inspects the first few entries.
type HistoryEntry struct {
	Score      int       // self-reported recall quality, 0-100
	ReviewedAt time.Time // when the review happened
}

// recent returns up to n of the most recent entries.
func recent(history []HistoryEntry, n int) []HistoryEntry {
	if len(history) > n {
		return history[:n]
	}
	return history
}

// averageScore returns the mean score of the given entries, 0 for none.
func averageScore(entries []HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range entries {
		sum += entry.Score
	}
	return float64(sum) / float64(len(entries))
}

// allScoresAtLeast reports whether every entry scored at least min.
func allScoresAtLeast(entries []HistoryEntry, min int) bool {
	for _, entry := range entries {
		if entry.Score < min {
			return false
		}
	}
	return true
}

// HighScoreCount returns how many entries scored at least threshold.
func HighScoreCount(history []HistoryEntry, threshold int) int {
	count := 0
	for _, entry := range history {
		if entry.Score >= threshold {
			count++
		}
	}
	return count
}
