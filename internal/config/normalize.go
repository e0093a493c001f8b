// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Server.Host = strings.TrimSpace(cfg.Server.Host)
	cfg.Assets.Root = strings.TrimSpace(cfg.Assets.Root)
	cfg.Device.ID = strings.TrimSpace(cfg.Device.ID)
	cfg.Device.Version = strings.TrimSpace(cfg.Device.Version)

	// Enum strings were accepted case-insensitively by Validate.
	cfg.Telemetry.Canonical = strings.ToLower(strings.TrimSpace(cfg.Telemetry.Canonical))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
}
