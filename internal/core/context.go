package core

import (
	"time"

	"github.com/sanverite/tactical-console/internal/clock"
)

// Context is the process-wide reference point for uptime and simulated
// signals. It is created once at startup and never changes; the zero
// value is not usable, construct it with NewContext.
type Context struct {
	startedAt time.Time
	clock     clock.Clock
}

// NewContext captures the current time of c as the start instant.
// A nil clock means clock.Real().
func NewContext(c clock.Clock) Context {
	if c == nil {
		c = clock.Real()
	}
	return Context{startedAt: c.Now(), clock: c}
}

// StartedAt returns the instant the context was created.
func (c Context) StartedAt() time.Time { return c.startedAt }

// Now reads the context clock.
func (c Context) Now() time.Time { return c.clock.Now() }

// Elapsed returns the time since start as of now, clamped at zero.
func (c Context) Elapsed(now time.Time) time.Duration {
	d := now.Sub(c.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// elapsedSeconds is Elapsed as fractional seconds, the time base of
// every simulated signal.
func (c Context) elapsedSeconds(now time.Time) float64 {
	return c.Elapsed(now).Seconds()
}
