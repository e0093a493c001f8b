package core

import (
	"testing"
	"time"

	"github.com/sanverite/tactical-console/internal/clock"
)

func TestUptimeSeconds(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    int64
	}{
		{0, 0},
		{999 * time.Millisecond, 0},
		{time.Second, 1},
		{1999 * time.Millisecond, 1},
		{90 * time.Second, 90},
		{-time.Second, 0},
	}
	for _, tc := range cases {
		if got := UptimeSeconds(tc.elapsed); got != tc.want {
			t.Errorf("UptimeSeconds(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestRecordingFlipsEveryHalfPeriod(t *testing.T) {
	cases := []struct {
		uptime int64
		want   bool
	}{
		{0, true},
		{29, true},
		{30, false},
		{31, false},
		{59, false},
		{60, true},
		{89, true},
		{90, false},
	}
	for _, tc := range cases {
		if got := RecordingAt(tc.uptime); got != tc.want {
			t.Errorf("RecordingAt(%d) = %v, want %v", tc.uptime, got, tc.want)
		}
	}
}

func TestRecordingChangesOnlyAtMultiplesOf30(t *testing.T) {
	for u := int64(1); u < 300; u++ {
		changed := RecordingAt(u) != RecordingAt(u-1)
		if changed != (u%RecordingHalfPeriod == 0) {
			t.Fatalf("uptime %d -> %d: changed=%v", u-1, u, changed)
		}
	}
}

func TestSimulatedStatus(t *testing.T) {
	c := clock.Fake(epoch)
	ctx := NewContext(c)
	s := NewSimulatedStatus(ctx, Identity{})

	snap := s.Status()
	if snap.DeviceID != DefaultDeviceID || snap.Version != DefaultVersion {
		t.Fatalf("identity = %q/%q, want defaults", snap.DeviceID, snap.Version)
	}
	if snap.UptimeSeconds != 0 || !snap.Recording {
		t.Fatalf("at start: uptime=%d recording=%v, want 0/true", snap.UptimeSeconds, snap.Recording)
	}

	c.Advance(31500 * time.Millisecond)
	snap = s.Status()
	if snap.UptimeSeconds != 31 {
		t.Fatalf("uptime = %d, want 31", snap.UptimeSeconds)
	}
	if snap.Recording {
		t.Fatal("recording = true at 31s, want false")
	}
}

func TestSimulatedStatusCustomIdentity(t *testing.T) {
	ctx := NewContext(clock.Fake(epoch))
	s := NewSimulatedStatus(ctx, Identity{DeviceID: "BENCH-7"})
	snap := s.Status()
	if snap.DeviceID != "BENCH-7" {
		t.Fatalf("DeviceID = %q, want BENCH-7", snap.DeviceID)
	}
	if snap.Version != DefaultVersion {
		t.Fatalf("Version = %q, want default", snap.Version)
	}
}

func TestUptimeNonDecreasing(t *testing.T) {
	c := clock.Fake(epoch)
	s := NewSimulatedStatus(NewContext(c), DefaultIdentity())

	prev := s.Status().UptimeSeconds
	for i := 0; i < 200; i++ {
		c.Advance(137 * time.Millisecond)
		cur := s.Status().UptimeSeconds
		if cur < prev {
			t.Fatalf("uptime went from %d to %d", prev, cur)
		}
		prev = cur
	}
}
