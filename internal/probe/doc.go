// Package probe contains startup checks used by the console.
//
// # Overview
//
// The probe package provides bounded, deterministic checks of inputs the
// server depends on. Probes accept a context and enforce a global
// deadline, record per-step latencies, and return explicit errors without
// retries or background goroutines.
//
// # Asset Probe
//
// ProbeAssets inspects the pre-built frontend tree with the following
// sequence:
//  1. Open the asset root (confined with os.OpenRoot).
//  2. Walk it, counting regular files and bytes.
//  3. Check that index.html is present.
//  4. Hash every regular file in name order into a BLAKE3-256 digest.
//
// Outputs & Semantics
//
// ProbeAssets returns an AssetSummary capturing:
//   - IndexPresent: true if index.html exists and is a regular file.
//   - Files, Bytes: regular file count and total size.
//   - Digest:       hex BLAKE3-256 over each file's name, size and bytes.
//     Two trees with the same names and contents share a digest.
//   - LatenciesMs:  per-step timings in ms ("walk", "hash").
//   - Warnings:     non-fatal anomalies (skipped symlinks, empty tree).
//   - LastChecked:  wall-clock timestamp when the probe completed.
//
// # Error Model
//
// A missing root, a missing index.html, or a deadline hit return a
// non-nil error; the summary still includes partial counts and warnings.
// The server starts regardless and answers 404 for unresolvable assets.
package probe
