// Package review provides the study item and review log models with their
// repositories. The scheduling engine never touches storage; commands load
// history here, run the engine, and persist the results back.
package review

import "time"

// Item is a learning item with its scheduling bookkeeping.
type Item struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	Score              int       `db:"score"`                // most recent recall score, 0-100
	PerfectRecallCount int       `db:"perfect_recall_count"` // reviews at or above the good-recall threshold
	LastReviewedAt     time.Time `db:"last_reviewed_at"`     // zero when never reviewed
	NextReviewAt       time.Time `db:"next_review_at"`
}

// ReviewLog is one completed review of an item.
type ReviewLog struct {
	ID              int64     `db:"id"`
	ItemID          string    `db:"item_id"`
	Score           int       `db:"score"`
	ReviewedAt      time.Time `db:"reviewed_at"`
	DurationSeconds int64     `db:"duration_seconds"`
	IntervalDays    int       `db:"interval_days"`
	CreatedAt       time.Time `db:"created_at"`
}
