// Package core owns the console's simulation model.
//
// Overview
//
// The core package models the device as a read-only Context (the instant
// the process started plus the clock it reads) and a set of providers
// that derive snapshots from it:
//
//   - Status: device identity, uptime and the recording flag
//   - Orientation: IMU-shaped telemetry (pitch, roll, accel, gyro, temp)
//   - Position: GPS-shaped telemetry (lat, lon, speed, heading)
//
// The core package remains unaware of HTTP or JSON. The api package maps
// snapshots to wire types.
//
// Concurrency & Safety
//
// Context is an immutable value and may be shared freely. Providers build
// a fresh snapshot per call and keep no state between calls. The only
// shared mutable piece is a seeded Jitter, which serializes access to its
// generator internally.
//
// Simulation
//
// Every provider has a <Name>At(now) form that takes the reading time
// explicitly; the plain form reads the Context clock. Hardware builds
// replace the Simulated* types with live implementations of the same
// provider interfaces, keeping the snapshot shapes.
package core
