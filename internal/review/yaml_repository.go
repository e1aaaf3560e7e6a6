package review

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/y-oshima/kioku/internal/scheduling"
)

// YAMLRepository implements Repository on a single YAML file. This is the
// default storage mode for a personal tracker; MySQL is opt-in.
type YAMLRepository struct {
	path string
}

// NewYAMLRepository creates a repository backed by the given file. The file
// may not exist yet; it is created on the first save.
func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

type yamlFile struct {
	Items []yamlItem `yaml:"items"`
}

type yamlItem struct {
	ID                 string    `yaml:"id"`
	Name               string    `yaml:"name,omitempty"`
	Score              int       `yaml:"score,omitempty"`
	PerfectRecallCount int       `yaml:"perfect_recall_count,omitempty"`
	LastReviewedAt     Date      `yaml:"last_reviewed_at,omitempty"`
	NextReviewAt       Date      `yaml:"next_review_at,omitempty"`
	Logs               []yamlLog `yaml:"logs,omitempty"` // newest first
}

type yamlLog struct {
	Score           int   `yaml:"score"`
	ReviewedAt      Date  `yaml:"reviewed_at"`
	DurationSeconds int64 `yaml:"duration_seconds,omitempty"`
	IntervalDays    int   `yaml:"interval_days,omitempty"`
}

// FindItem returns the item with the given ID, or nil if not found.
func (r *YAMLRepository) FindItem(_ context.Context, itemID string) (*Item, error) {
	file, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, item := range file.Items {
		if item.ID != itemID {
			continue
		}
		return &Item{
			ID:                 item.ID,
			Name:               item.Name,
			Score:              item.Score,
			PerfectRecallCount: item.PerfectRecallCount,
			LastReviewedAt:     item.LastReviewedAt.Time,
			NextReviewAt:       item.NextReviewAt.Time,
		}, nil
	}
	return nil, nil
}

// SaveItem inserts or updates an item, preserving its logs.
func (r *YAMLRepository) SaveItem(_ context.Context, item *Item) error {
	file, err := r.load()
	if err != nil {
		return err
	}

	updated := yamlItem{
		ID:                 item.ID,
		Name:               item.Name,
		Score:              item.Score,
		PerfectRecallCount: item.PerfectRecallCount,
		LastReviewedAt:     NewDate(item.LastReviewedAt),
		NextReviewAt:       NewDate(item.NextReviewAt),
	}

	found := false
	for i, existing := range file.Items {
		if existing.ID != item.ID {
			continue
		}
		updated.Logs = existing.Logs
		file.Items[i] = updated
		found = true
		break
	}
	if !found {
		file.Items = append(file.Items, updated)
	}

	return r.save(file)
}

// History returns the item's past reviews, newest first.
func (r *YAMLRepository) History(_ context.Context, itemID string) ([]scheduling.HistoryEntry, error) {
	file, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, item := range file.Items {
		if item.ID != itemID {
			continue
		}
		entries := make([]scheduling.HistoryEntry, 0, len(item.Logs))
		for _, log := range item.Logs {
			entries = append(entries, scheduling.HistoryEntry{
				Score:      log.Score,
				ReviewedAt: log.ReviewedAt.Time,
			})
		}
		return entries, nil
	}
	return nil, nil
}

// AppendLog prepends a completed review to the item's logs, creating the
// item entry if needed.
func (r *YAMLRepository) AppendLog(_ context.Context, log *ReviewLog) error {
	file, err := r.load()
	if err != nil {
		return err
	}

	newLog := yamlLog{
		Score:           log.Score,
		ReviewedAt:      NewDate(log.ReviewedAt),
		DurationSeconds: log.DurationSeconds,
		IntervalDays:    log.IntervalDays,
	}

	found := false
	for i, item := range file.Items {
		if item.ID != log.ItemID {
			continue
		}
		file.Items[i].Logs = append([]yamlLog{newLog}, item.Logs...)
		found = true
		break
	}
	if !found {
		file.Items = append(file.Items, yamlItem{
			ID:   log.ItemID,
			Logs: []yamlLog{newLog},
		})
	}

	return r.save(file)
}

// FindAllLogs returns every review log across items, newest first.
func (r *YAMLRepository) FindAllLogs(_ context.Context) ([]ReviewLog, error) {
	file, err := r.load()
	if err != nil {
		return nil, err
	}

	var logs []ReviewLog
	for _, item := range file.Items {
		for _, log := range item.Logs {
			logs = append(logs, ReviewLog{
				ItemID:          item.ID,
				Score:           log.Score,
				ReviewedAt:      log.ReviewedAt.Time,
				DurationSeconds: log.DurationSeconds,
				IntervalDays:    log.IntervalDays,
			})
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].ReviewedAt.After(logs[j].ReviewedAt)
	})
	return logs, nil
}

func (r *YAMLRepository) load() (*yamlFile, error) {
	content, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return &yamlFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", r.path, err)
	}
	return &file, nil
}

func (r *YAMLRepository) save(file *yamlFile) error {
	content, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(r.path, content, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", r.path, err)
	}
	return nil
}
