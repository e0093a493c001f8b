package clock

import "time"

// Clock reports the current time.
type Clock interface {
	// Now returns the current time. Readings from Real carry a
	// monotonic component, so Sub between two readings never goes
	// backwards when the wall clock is stepped.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
