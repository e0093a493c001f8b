// Package assets resolves URL paths to files in the pre-built frontend
// tree and maps file names to content types.
//
// The asset root is read-only input produced by the frontend build. Files
// are opened on demand and never cached here. Every open goes through
// os.OpenInRoot, so neither ".." segments nor symlinks can reach outside
// the root; paths containing ".." are rejected before touching the
// filesystem at all.
package assets
