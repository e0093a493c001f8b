// Command console serves the tactical console web UI and its simulated
// device API.
//
// Usage:
//
//	console --config console.yaml --port 3000 --assets ./dist
//
// Flags:
//
//	--config       YAML or JSONC config file (optional)
//	--port         listen port; overrides PORT and the config file
//	--host         listen host (default all interfaces)
//	--assets       static asset root (default ./dist)
//	--canonical    telemetry variant at /api/telemetry: orientation or position
//	--seed         jitter seed; 0 is unseeded
//	--log-level    debug, info, warn or error
//	--log-format   text or json
//	--version      print the version and exit
//
// Behavior:
//
// Resolves configuration (defaults, file, PORT, flags), probes the asset
// root, starts the API server and blocks on SIGINT/SIGTERM for graceful
// shutdown. A missing index.html is logged as a warning; the server still
// starts and answers / with 404 until the UI is built.
package main
