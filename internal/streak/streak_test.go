package streak

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func TestTracker_RecordActivity_FirstEver(t *testing.T) {
	now := time.Date(2025, 5, 1, 20, 15, 0, 0, time.UTC)
	tracker := NewTracker(&fakeClock{now: now}, nil)

	state := tracker.RecordActivity()

	active, ok := state.(Active)
	require.True(t, ok)
	assert.Equal(t, 1, active.Current)
	assert.Equal(t, 1, active.Longest)
	assert.Equal(t, now, active.LastActive)
	assert.Equal(t, now, active.StartedAt)
}

func TestTracker_RecordActivity_SameDayIsIdempotent(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	tracker := NewTracker(clk, nil)

	first := tracker.RecordActivity()

	clk.set(time.Date(2025, 5, 1, 23, 30, 0, 0, time.UTC))
	second := tracker.RecordActivity()

	assert.Equal(t, first, second)
}

func TestTracker_RecordActivity_NextDayExtends(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 5, 1, 23, 59, 0, 0, time.UTC)}
	tracker := NewTracker(clk, nil)
	tracker.RecordActivity()

	// A calendar-day boundary, not 24 elapsed hours.
	clk.set(time.Date(2025, 5, 2, 0, 10, 0, 0, time.UTC))
	state := tracker.RecordActivity()

	active, ok := state.(Active)
	require.True(t, ok)
	assert.Equal(t, 2, active.Current)
	assert.Equal(t, 2, active.Longest)
}

func TestTracker_RecordActivity_GapResets(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	persisted := Active{
		Current:    6,
		Longest:    9,
		LastActive: now.AddDate(0, 0, -3),
		StartedAt:  now.AddDate(0, 0, -8),
	}
	tracker := NewTracker(&fakeClock{now: now}, persisted)

	state := tracker.RecordActivity()

	active, ok := state.(Active)
	require.True(t, ok)
	assert.Equal(t, 1, active.Current)
	assert.Equal(t, 9, active.Longest, "longest streak survives a reset")
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), active.StartedAt)
	assert.Equal(t, now, active.LastActive)
}

func TestTracker_RecordActivity_ExtendsBeyondLongest(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	persisted := Active{
		Current:    4,
		Longest:    4,
		LastActive: now.AddDate(0, 0, -1),
		StartedAt:  now.AddDate(0, 0, -4),
	}
	tracker := NewTracker(&fakeClock{now: now}, persisted)

	active, ok := tracker.RecordActivity().(Active)
	require.True(t, ok)
	assert.Equal(t, 5, active.Current)
	assert.Equal(t, 5, active.Longest)
}

func TestTracker_RecordActivity_MigratedRecordWithoutLastActive(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(&fakeClock{now: now}, Active{Longest: 7})

	active, ok := tracker.RecordActivity().(Active)
	require.True(t, ok)
	assert.Equal(t, 1, active.Current)
	assert.Equal(t, 7, active.Longest)
	assert.Equal(t, now, active.LastActive)
}

func TestTracker_RecordActivity_Concurrent(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	tracker := NewTracker(clk, Active{
		Current:    2,
		Longest:    2,
		LastActive: time.Date(2025, 4, 30, 8, 0, 0, 0, time.UTC),
		StartedAt:  time.Date(2025, 4, 29, 0, 0, 0, 0, time.UTC),
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordActivity()
		}()
	}
	wg.Wait()

	// Two simultaneous events must not both apply a +1.
	active, ok := tracker.State().(Active)
	require.True(t, ok)
	assert.Equal(t, 3, active.Current)
	assert.Equal(t, 3, active.Longest)
}

func TestTracker_State_BeforeAnyActivity(t *testing.T) {
	tracker := NewTracker(&fakeClock{now: time.Now()}, nil)
	assert.IsType(t, NotStarted{}, tracker.State())
}
