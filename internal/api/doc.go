// Package api exposes the console's HTTP surface.
//
// Separation of Concerns
//
// The api package defines public JSON types (decoupled from core), maps
// core snapshots to them, and hosts an HTTP server with minimal
// middleware. The core package remains unaware of HTTP or JSON; the
// assets package owns path resolution and content types.
//
// Dispatch
//
// Requests are matched against a fixed table of exact paths. Anything
// else is resolved against the asset tree and answered with 404 when no
// regular file matches. No method restriction is applied.
//
// Server
//
// NewServer builds the route table and middleware. Start binds and
// serves in a goroutine; Stop performs graceful shutdown. Middleware
// recovers handler panics into a 500 and logs method, path, status,
// size and duration. Responses are gzip-compressed for clients that
// accept it when ServerOptions.Compress is set.
//
// Encoding
//
// API payloads are JSON with Cache-Control: no-cache. A client that
// explicitly accepts application/cbor receives the same payload as CBOR.
//
// Current Endpoints
//
//   - /api/status: device identity, uptime and recording flag
//   - /api/telemetry: the canonical telemetry variant
//   - /api/telemetry/orientation: IMU-shaped telemetry
//   - /api/telemetry/position: GPS-shaped telemetry
//   - /api/healthz: liveness
//   - anything else: static assets
package api
