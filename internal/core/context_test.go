package core

import (
	"testing"
	"time"

	"github.com/sanverite/tactical-console/internal/clock"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewContextCapturesStart(t *testing.T) {
	c := clock.Fake(epoch)
	ctx := NewContext(c)
	c.Advance(time.Minute)

	if !ctx.StartedAt().Equal(epoch) {
		t.Fatalf("StartedAt() = %v, want %v", ctx.StartedAt(), epoch)
	}
	if got := ctx.Elapsed(ctx.Now()); got != time.Minute {
		t.Fatalf("Elapsed() = %v, want 1m", got)
	}
}

func TestElapsedClampsBeforeStart(t *testing.T) {
	ctx := NewContext(clock.Fake(epoch))
	if got := ctx.Elapsed(epoch.Add(-time.Second)); got != 0 {
		t.Fatalf("Elapsed() before start = %v, want 0", got)
	}
}

func TestNewContextNilClockUsesReal(t *testing.T) {
	ctx := NewContext(nil)
	if ctx.StartedAt().IsZero() {
		t.Fatal("StartedAt() is zero with real clock")
	}
	if ctx.Elapsed(ctx.Now()) < 0 {
		t.Fatal("negative elapsed with real clock")
	}
}
