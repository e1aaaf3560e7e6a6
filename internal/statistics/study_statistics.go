// Package statistics aggregates review logs into per-period study reports.
package statistics

import (
	"fmt"
	"sort"

	"github.com/y-oshima/kioku/internal/review"
)

// StudyStatistics holds statistics for a time period.
type StudyStatistics struct {
	Period         string // "2025-01" for monthly
	ReviewCount    int    // total completed reviews
	UniqueItems    int    // distinct items reviewed in the period
	PerfectRecalls int    // reviews at or above the good-recall threshold
	StudySeconds   int64  // total recorded session time
}

// AggregateStatistics holds totals across all periods with global unique counts.
type AggregateStatistics struct {
	ReviewCount    int
	UniqueItems    int // deduplicated across periods
	PerfectRecalls int
	StudySeconds   int64
}

// StatisticsResult holds both per-period and aggregate statistics.
type StatisticsResult struct {
	Periods   []StudyStatistics
	Aggregate AggregateStatistics
}

// periodData tracks counts per period
type periodData struct {
	reviewCount    int
	uniqueItems    map[string]struct{}
	perfectRecalls int
	studySeconds   int64
}

// CalculateStatistics aggregates review logs into monthly statistics.
// It accepts optional year and month filters (0 means no filter) and the
// good-recall threshold used to classify perfect recalls.
func CalculateStatistics(logs []review.ReviewLog, goodRecallThreshold, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalUniqueItems := make(map[string]struct{})

	var totalReviews, totalPerfect int
	var totalSeconds int64

	for _, log := range logs {
		if log.ReviewedAt.IsZero() {
			continue
		}

		logYear := log.ReviewedAt.Year()
		logMonth := int(log.ReviewedAt.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		if stats[period] == nil {
			stats[period] = &periodData{
				uniqueItems: make(map[string]struct{}),
			}
		}

		data := stats[period]
		data.reviewCount++
		data.uniqueItems[log.ItemID] = struct{}{}
		data.studySeconds += log.DurationSeconds
		if log.Score >= goodRecallThreshold {
			data.perfectRecalls++
			totalPerfect++
		}

		globalUniqueItems[log.ItemID] = struct{}{}
		totalReviews++
		totalSeconds += log.DurationSeconds
	}

	periods := make([]StudyStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, StudyStatistics{
			Period:         period,
			ReviewCount:    data.reviewCount,
			UniqueItems:    len(data.uniqueItems),
			PerfectRecalls: data.perfectRecalls,
			StudySeconds:   data.studySeconds,
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods: periods,
		Aggregate: AggregateStatistics{
			ReviewCount:    totalReviews,
			UniqueItems:    len(globalUniqueItems),
			PerfectRecalls: totalPerfect,
			StudySeconds:   totalSeconds,
		},
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}
