// Package session measures the wall-clock duration of study sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/y-oshima/kioku/internal/clock"
)

// minimumDurationSeconds is the floor for a recorded session. A session that
// starts and ends within the same second is recorded as one second so it
// stays distinguishable from "no session".
const minimumDurationSeconds = 1

// Tracker records session start times in memory and converts them into
// durations on end. Sessions are never persisted mid-flight; the caller
// stores the returned duration. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	clk      clock.Clock
	sessions map[string]time.Time
}

// NewTracker creates a Tracker using the given clock.
func NewTracker(clk clock.Clock) *Tracker {
	return &Tracker{
		clk:      clk,
		sessions: make(map[string]time.Time),
	}
}

// Start begins a new session and returns its token.
func (t *Tracker) Start() string {
	id := uuid.NewString()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[id] = t.clk.Now()
	return id
}

// End finishes the session and returns its duration in whole seconds, at
// least 1. An unknown id returns 0 without error: end calls legitimately
// race with UI dismissal, so duplicates are expected.
func (t *Tracker) End(id string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	startedAt, ok := t.sessions[id]
	if !ok {
		return 0
	}
	delete(t.sessions, id)

	seconds := int64(t.clk.Now().Sub(startedAt).Seconds())
	if seconds < minimumDurationSeconds {
		return minimumDurationSeconds
	}
	return seconds
}

// Peek returns the elapsed seconds of a running session without ending it,
// or 0 for an unknown id.
func (t *Tracker) Peek(id string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	startedAt, ok := t.sessions[id]
	if !ok {
		return 0
	}
	return int64(t.clk.Now().Sub(startedAt).Seconds())
}

// IsActive reports whether the session is still running.
func (t *Tracker) IsActive(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.sessions[id]
	return ok
}
