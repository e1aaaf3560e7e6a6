// Package streak tracks consecutive calendar days with study activity.
package streak

import (
	"sync"
	"time"

	"github.com/y-oshima/kioku/internal/clock"
)

// State is the streak record. It is one of NotStarted or Active; the
// bootstrap path is a distinct case, not a nil check.
type State interface {
	isState()
}

// NotStarted means no activity has ever been recorded.
type NotStarted struct{}

// Active is a streak with at least one counted day.
type Active struct {
	Current    int       // consecutive days with qualifying activity
	Longest    int       // historical maximum of Current
	LastActive time.Time // last day counted
	StartedAt  time.Time // when the current streak began
}

func (NotStarted) isState() {}
func (Active) isState()     {}

// Tracker computes streak state transitions on activity events. It holds the
// current record behind a mutex so concurrent activity events cannot both
// observe the pre-update streak. Persistence is the caller's responsibility.
type Tracker struct {
	mu    sync.Mutex
	clk   clock.Clock
	state State
}

// NewTracker creates a tracker seeded with a persisted state. A nil state
// bootstraps as NotStarted.
func NewTracker(clk clock.Clock, persisted State) *Tracker {
	if persisted == nil {
		persisted = NotStarted{}
	}
	return &Tracker{clk: clk, state: persisted}
}

// State returns the current streak record.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// RecordActivity applies one "activity occurred" event and returns the
// resulting state. A second event on the same calendar day is a no-op; a gap
// of exactly one day extends the streak; a longer gap resets the current
// streak to 1 and leaves the longest streak untouched.
func (t *Tracker) RecordActivity() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clk.Now()

	switch s := t.state.(type) {
	case NotStarted:
		t.state = Active{
			Current:    1,
			Longest:    1,
			LastActive: now,
			StartedAt:  now,
		}
	case Active:
		if s.LastActive.IsZero() {
			// Migrated record that never counted a day.
			s.Current = 1
			if s.Longest < 1 {
				s.Longest = 1
			}
			s.LastActive = now
			s.StartedAt = now
			t.state = s
			break
		}

		switch diff := clock.DayDifference(s.LastActive, now); {
		case diff <= 0:
			// Already counted today.
		case diff == 1:
			s.Current++
			if s.Current > s.Longest {
				s.Longest = s.Current
			}
			s.LastActive = now
			t.state = s
		default:
			s.Current = 1
			s.StartedAt = clock.StartOfDay(now)
			s.LastActive = now
			t.state = s
		}
	}

	return t.state
}
