package core

import "time"

// Identity values reported until a hardware identity source is wired.
const (
	DefaultDeviceID = "ESP32-CAM-001"
	DefaultVersion  = "1.0.0"
)

// RecordingHalfPeriod is the number of uptime seconds the simulated
// recording flag holds each value.
const RecordingHalfPeriod = 30

// Identity describes the device reported by the status endpoint.
type Identity struct {
	DeviceID string
	Version  string
}

// DefaultIdentity returns the simulated device identity.
func DefaultIdentity() Identity {
	return Identity{DeviceID: DefaultDeviceID, Version: DefaultVersion}
}

// StatusSnapshot is one reading of device status.
type StatusSnapshot struct {
	DeviceID      string
	UptimeSeconds int64
	Version       string
	Recording     bool
}

// StatusProvider produces device status snapshots.
type StatusProvider interface {
	Status() StatusSnapshot
}

// SimulatedStatus derives status from the process Context. Uptime is
// elapsed process time and the recording flag is a square wave.
type SimulatedStatus struct {
	ctx Context
	id  Identity
}

// NewSimulatedStatus returns a status provider for ctx. Empty identity
// fields fall back to DefaultIdentity.
func NewSimulatedStatus(ctx Context, id Identity) *SimulatedStatus {
	def := DefaultIdentity()
	if id.DeviceID == "" {
		id.DeviceID = def.DeviceID
	}
	if id.Version == "" {
		id.Version = def.Version
	}
	return &SimulatedStatus{ctx: ctx, id: id}
}

// Status reads the status as of the context clock.
func (s *SimulatedStatus) Status() StatusSnapshot {
	return s.StatusAt(s.ctx.Now())
}

// StatusAt reads the status as of now.
func (s *SimulatedStatus) StatusAt(now time.Time) StatusSnapshot {
	uptime := UptimeSeconds(s.ctx.Elapsed(now))
	return StatusSnapshot{
		DeviceID:      s.id.DeviceID,
		UptimeSeconds: uptime,
		Version:       s.id.Version,
		Recording:     RecordingAt(uptime),
	}
}

// UptimeSeconds truncates an elapsed duration to whole seconds.
func UptimeSeconds(elapsed time.Duration) int64 {
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// RecordingAt reports the simulated recording flag for an uptime: on for
// the first half-period, off for the next, and so on.
func RecordingAt(uptimeSeconds int64) bool {
	return (uptimeSeconds/RecordingHalfPeriod)%2 == 0
}
