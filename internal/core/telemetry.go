package core

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Variant names a telemetry schema.
type Variant string

const (
	VariantOrientation Variant = "orientation"
	VariantPosition    Variant = "position"
)

// ParseVariant parses a variant name, ignoring case and surrounding space.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantOrientation, VariantPosition:
		return v, nil
	default:
		return "", fmt.Errorf("unknown telemetry variant %q (want %q or %q)", s, VariantOrientation, VariantPosition)
	}
}

// Base coordinate of the simulated track.
const (
	BaseLatitude  = 33.4484
	BaseLongitude = -112.0740
)

// Vector3 is a three-axis sensor reading.
type Vector3 struct {
	X, Y, Z float64
}

// Orientation is an IMU reading. Pitch and roll are degrees, Accel is in
// g, Gyro in degrees per second and Temp in degrees Celsius.
type Orientation struct {
	Available bool
	Pitch     float64
	Roll      float64
	Accel     Vector3
	Gyro      Vector3
	Temp      float64
}

// OrientationSnapshot is an Orientation stamped with its reading time in
// Unix milliseconds.
type OrientationSnapshot struct {
	Orientation Orientation
	Timestamp   int64
}

// PositionSnapshot is a GPS reading stamped with its reading time in Unix
// milliseconds.
type PositionSnapshot struct {
	Lat        float64
	Lon        float64
	SpeedKph   int
	HeadingDeg int
	Timestamp  int64
}

// OrientationProvider produces IMU snapshots.
type OrientationProvider interface {
	Orientation() OrientationSnapshot
}

// PositionProvider produces GPS snapshots.
type PositionProvider interface {
	Position() PositionSnapshot
}

// SimulatedTelemetry implements both telemetry providers from elapsed
// process time plus jitter.
type SimulatedTelemetry struct {
	ctx    Context
	jitter Jitter
}

// NewSimulatedTelemetry returns a telemetry simulator. A nil jitter
// means NewJitter(0).
func NewSimulatedTelemetry(ctx Context, j Jitter) *SimulatedTelemetry {
	if j == nil {
		j = NewJitter(0)
	}
	return &SimulatedTelemetry{ctx: ctx, jitter: j}
}

// Orientation reads the IMU as of the context clock.
func (s *SimulatedTelemetry) Orientation() OrientationSnapshot {
	return s.OrientationAt(s.ctx.Now())
}

// OrientationAt reads the IMU as of now. The vehicle pitches and rolls on
// slow sine waves; accel is gravity decomposed along the unrounded
// attitude and gyro approximates the attitude rate.
func (s *SimulatedTelemetry) OrientationAt(now time.Time) OrientationSnapshot {
	t := s.ctx.elapsedSeconds(now)

	pitch := math.Sin(t/3)*15 + noise(s.jitter)
	roll := math.Cos(t/4)*10 + noise(s.jitter)

	pitchRad := pitch * math.Pi / 180
	rollRad := roll * math.Pi / 180

	accel := Vector3{
		X: roundTo(math.Sin(pitchRad), 3),
		Y: roundTo(math.Sin(rollRad)*math.Cos(pitchRad), 3),
		Z: roundTo(math.Cos(rollRad)*math.Cos(pitchRad), 3),
	}
	gyro := Vector3{
		X: roundTo(math.Cos(t/3)*5+noise(s.jitter)*2, 2),
		Y: roundTo(-math.Sin(t/4)*2.5+noise(s.jitter)*2, 2),
		Z: roundTo(noise(s.jitter)*3, 2),
	}

	return OrientationSnapshot{
		Orientation: Orientation{
			Available: true,
			Pitch:     roundTo(pitch, 2),
			Roll:      roundTo(roll, 2),
			Accel:     accel,
			Gyro:      gyro,
			Temp:      roundTo(25+math.Sin(t/60)*2, 1),
		},
		Timestamp: now.UnixMilli(),
	}
}

// Position reads the GPS as of the context clock.
func (s *SimulatedTelemetry) Position() PositionSnapshot {
	return s.PositionAt(s.ctx.Now())
}

// PositionAt reads the GPS as of now. The track circles the base
// coordinate; speed and heading carry no noise.
func (s *SimulatedTelemetry) PositionAt(now time.Time) PositionSnapshot {
	t := s.ctx.elapsedSeconds(now)

	speed := math.Abs(80*math.Sin(t/5)) + 20
	heading := int64(math.Floor(2*t+0.5)) % 360

	return PositionSnapshot{
		Lat:        roundTo(BaseLatitude+0.001*math.Sin(t/10), 6),
		Lon:        roundTo(BaseLongitude+0.001*math.Cos(t/10), 6),
		SpeedKph:   int(math.Floor(speed + 0.5)),
		HeadingDeg: int(heading),
		Timestamp:  now.UnixMilli(),
	}
}

// roundTo rounds x to places decimals, sending halves toward positive
// infinity so readings match the firmware's rounding.
func roundTo(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(x*p+0.5) / p
}
