// Package testutil provides shared test helpers for creating config files and review fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/y-oshima/kioku/internal/review"
)

// SetupTestConfig creates a minimal config file and data directory for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	configContent := fmt.Sprintf(`storage:
  mode: yaml
  reviews_file: %s
  streak_file: %s
study:
  good_recall_threshold: 80
`,
		filepath.Join(dataDir, "reviews.yml"),
		filepath.Join(dataDir, "streak.yml"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SeedReview records one past review of an item into the YAML repository at
// reviewsFile, creating the item when it does not exist yet.
func SeedReview(t *testing.T, reviewsFile, itemID string, score int, reviewedAt time.Time) {
	t.Helper()

	repo := review.NewYAMLRepository(reviewsFile)
	ctx := context.Background()

	item, err := repo.FindItem(ctx, itemID)
	require.NoError(t, err)
	if item == nil {
		item = &review.Item{ID: itemID}
	}
	item.Score = score
	item.LastReviewedAt = reviewedAt

	require.NoError(t, repo.AppendLog(ctx, &review.ReviewLog{
		ItemID:          itemID,
		Score:           score,
		ReviewedAt:      reviewedAt,
		DurationSeconds: 30,
	}))
	require.NoError(t, repo.SaveItem(ctx, item))
}
