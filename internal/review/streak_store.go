package review

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/y-oshima/kioku/internal/streak"
)

// StreakStore persists the single streak record as a YAML file. A missing
// file is the defined bootstrap path and loads as streak.NotStarted.
type StreakStore struct {
	path string
}

// NewStreakStore creates a store backed by the given file.
func NewStreakStore(path string) *StreakStore {
	return &StreakStore{path: path}
}

type streakRecord struct {
	CurrentStreak  int  `yaml:"current_streak"`
	LongestStreak  int  `yaml:"longest_streak"`
	LastActiveDate Date `yaml:"last_active_date,omitempty"`
	StartDate      Date `yaml:"streak_start_date,omitempty"`
}

// Load reads the persisted streak state.
func (s *StreakStore) Load() (streak.State, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return streak.NotStarted{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var record streakRecord
	if err := yaml.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", s.path, err)
	}

	return streak.Active{
		Current:    record.CurrentStreak,
		Longest:    record.LongestStreak,
		LastActive: record.LastActiveDate.Time,
		StartedAt:  record.StartDate.Time,
	}, nil
}

// Save writes the streak state. Saving NotStarted removes the record file.
func (s *StreakStore) Save(state streak.State) error {
	active, ok := state.(streak.Active)
	if !ok {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("os.Remove(%s) > %w", s.path, err)
		}
		return nil
	}

	content, err := yaml.Marshal(streakRecord{
		CurrentStreak:  active.Current,
		LongestStreak:  active.Longest,
		LastActiveDate: NewDate(active.LastActive),
		StartDate:      NewDate(active.StartedAt),
	})
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}
