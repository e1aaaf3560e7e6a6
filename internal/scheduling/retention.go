package scheduling

import (
	"math"
	"time"

	"github.com/y-oshima/kioku/internal/clock"
)

// dailyForgettingRate is the exponential decay rate of the forgetting
// curve: retention falls by 5% per day without review.
const dailyForgettingRate = 0.05

const (
	maxReviewEffect       = 0.75
	reviewEffectPerReview = 0.15
	maxStabilizationBonus = 20.0
	stabilizationPerHigh  = 4.0
)

// SimpleRetention estimates retention from the current score and the count
// of high-quality recalls. Kept for quick display; EnhancedRetention is the
// model used for scheduling-adjacent stats.
func SimpleRetention(score, perfectRecallCount int) int {
	retention := float64(score)*0.8 + float64(perfectRecallCount)*5.0
	return int(clampFloat(retention, 0, 100))
}

// EnhancedRetention estimates retention with an exponential forgetting curve
// flattened by reinforcement from repetition and a stabilization bonus from
// a track record of high-quality recalls.
//
// daysSinceLastReview is a calendar-day count, reviewCount the number of past
// reviews, and highScoreCount the number of past reviews scoring at least 80.
func EnhancedRetention(score, daysSinceLastReview, reviewCount, highScoreCount int) int {
	score = clampInt(score, 0, 100)
	if daysSinceLastReview < 0 {
		daysSinceLastReview = 0
	}
	if reviewCount < 0 {
		reviewCount = 0
	}
	if highScoreCount < 0 {
		highScoreCount = 0
	}

	retentionMultiplier := math.Exp(-dailyForgettingRate * float64(daysSinceLastReview))
	reviewEffect := math.Min(maxReviewEffect, float64(reviewCount)*reviewEffectPerReview)
	stabilizationBonus := math.Min(maxStabilizationBonus, float64(highScoreCount)*stabilizationPerHigh)

	decayedScore := float64(score) * (retentionMultiplier + reviewEffect)
	return int(clampFloat(decayedScore+stabilizationBonus, 0, 100))
}

// DaysSinceLastReview returns the calendar-day difference between the last
// review and now. A zero lastReviewedAt means never reviewed and yields 0.
func DaysSinceLastReview(lastReviewedAt, now time.Time) int {
	if lastReviewedAt.IsZero() {
		return 0
	}
	days := clock.DayDifference(lastReviewedAt, now)
	if days < 0 {
		return 0
	}
	return days
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
