package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/y-oshima/kioku/internal/scheduling"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review Repository

// Repository defines operations for managing items and review logs. History
// is always returned most-recent-first.
type Repository interface {
	FindItem(ctx context.Context, itemID string) (*Item, error)
	SaveItem(ctx context.Context, item *Item) error
	History(ctx context.Context, itemID string) ([]scheduling.HistoryEntry, error)
	AppendLog(ctx context.Context, log *ReviewLog) error
	FindAllLogs(ctx context.Context) ([]ReviewLog, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindItem returns the item with the given ID, or nil if not found.
func (r *DBRepository) FindItem(ctx context.Context, itemID string) (*Item, error) {
	var item Item
	err := r.db.GetContext(ctx, &item,
		"SELECT id, name, score, perfect_recall_count, last_reviewed_at, next_review_at FROM items WHERE id = ?",
		itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(item) > %w", err)
	}
	return &item, nil
}

// SaveItem inserts or updates an item.
func (r *DBRepository) SaveItem(ctx context.Context, item *Item) error {
	if _, err := r.db.NamedExecContext(ctx, `
		INSERT INTO items (id, name, score, perfect_recall_count, last_reviewed_at, next_review_at)
		VALUES (:id, :name, :score, :perfect_recall_count, :last_reviewed_at, :next_review_at)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			score = VALUES(score),
			perfect_recall_count = VALUES(perfect_recall_count),
			last_reviewed_at = VALUES(last_reviewed_at),
			next_review_at = VALUES(next_review_at)`,
		item); err != nil {
		return fmt.Errorf("db.NamedExecContext(items) > %w", err)
	}
	return nil
}

// History returns the item's past reviews, newest first.
func (r *DBRepository) History(ctx context.Context, itemID string) ([]scheduling.HistoryEntry, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs WHERE item_id = ? ORDER BY reviewed_at DESC",
		itemID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs by item) > %w", err)
	}

	entries := make([]scheduling.HistoryEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, scheduling.HistoryEntry{
			Score:      log.Score,
			ReviewedAt: log.ReviewedAt,
		})
	}
	return entries, nil
}

// AppendLog records a completed review.
func (r *DBRepository) AppendLog(ctx context.Context, log *ReviewLog) error {
	if _, err := r.db.NamedExecContext(ctx, `
		INSERT INTO review_logs (item_id, score, reviewed_at, duration_seconds, interval_days)
		VALUES (:item_id, :score, :reviewed_at, :duration_seconds, :interval_days)`,
		log); err != nil {
		return fmt.Errorf("db.NamedExecContext(review_logs) > %w", err)
	}
	return nil
}

// FindAllLogs returns every review log, newest first.
func (r *DBRepository) FindAllLogs(ctx context.Context) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs ORDER BY reviewed_at DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs) > %w", err)
	}
	return logs, nil
}
