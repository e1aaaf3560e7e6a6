package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/y-oshima/kioku/internal/mocks/cli"
	mock_review "github.com/y-oshima/kioku/internal/mocks/review"
	"github.com/y-oshima/kioku/internal/review"
	"github.com/y-oshima/kioku/internal/streak"
)

func TestRunStatsReport(t *testing.T) {
	ctx := context.Background()

	t.Run("renders without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_review.NewMockRepository(ctrl)
		repo.EXPECT().FindAllLogs(ctx).Return([]review.ReviewLog{
			{
				ItemID:          "vocab-001",
				Score:           90,
				ReviewedAt:      time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
				DurationSeconds: 42,
			},
		}, nil)

		err := RunStatsReport(ctx, repo, 80, 0, 0)
		require.NoError(t, err)
	})

	t.Run("no logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_review.NewMockRepository(ctrl)
		repo.EXPECT().FindAllLogs(ctx).Return(nil, nil)

		err := RunStatsReport(ctx, repo, 80, 0, 0)
		require.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_review.NewMockRepository(ctrl)
		repo.EXPECT().FindAllLogs(ctx).Return(nil, assert.AnError)

		err := RunStatsReport(ctx, repo, 80, 0, 0)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRunStreakStatus(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)

	t.Run("no streak yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_cli.NewMockStreakStore(ctrl)
		store.EXPECT().Load().Return(streak.NotStarted{}, nil)

		err := RunStreakStatus(store, &fakeClock{now: now})
		require.NoError(t, err)
	})

	t.Run("active streak", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_cli.NewMockStreakStore(ctrl)
		store.EXPECT().Load().Return(streak.Active{
			Current:    4,
			Longest:    9,
			LastActive: now,
			StartedAt:  now.AddDate(0, 0, -3),
		}, nil)

		err := RunStreakStatus(store, &fakeClock{now: now})
		require.NoError(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_cli.NewMockStreakStore(ctrl)
		store.EXPECT().Load().Return(nil, assert.AnError)

		err := RunStreakStatus(store, &fakeClock{now: now})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
