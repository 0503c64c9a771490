package engine

import "time"

// GameClock is wall time minus every paused interval. Effect expiries and the
// tick gate read it, so a pause freezes all round timers.
// Owned by the runner goroutine, not synchronized
type GameClock struct {
	source TimeProvider

	paused      bool
	pausedAt    time.Time     // Source time when the current pause began
	pausedTotal time.Duration // Sum of finished pauses
}

// NewGameClock creates a running clock over source
func NewGameClock(source TimeProvider) *GameClock {
	return &GameClock{source: source}
}

// Now returns game time. While paused it stays at the pause instant
func (c *GameClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.pausedTotal)
	}
	return c.source.Now().Add(-c.pausedTotal)
}

// Pause freezes game time, repeated calls are ignored
func (c *GameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.source.Now()
}

// Resume continues game time from where it was frozen
func (c *GameClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.pausedTotal += c.source.Now().Sub(c.pausedAt)
	c.pausedAt = time.Time{}
}

// SetPaused pauses or resumes to match p
func (c *GameClock) SetPaused(p bool) {
	if p {
		c.Pause()
	} else {
		c.Resume()
	}
}

// IsPaused reports the pause state
func (c *GameClock) IsPaused() bool {
	return c.paused
}

// PausedTotal returns the cumulative pause, including a pause in progress
func (c *GameClock) PausedTotal() time.Duration {
	total := c.pausedTotal
	if c.paused {
		total += c.source.Now().Sub(c.pausedAt)
	}
	return total
}
