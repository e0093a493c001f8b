// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/sanverite/tactical-console/internal/core"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}

	// ------------------------------------------------------------
	// SERVER
	// ------------------------------------------------------------

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range 1-65535", ErrInvalid, cfg.Server.Port)
	}

	timeouts := []struct {
		name string
		ms   int
	}{
		{"read_timeout_ms", cfg.Server.ReadTimeoutMs},
		{"read_header_timeout_ms", cfg.Server.ReadHeaderTimeoutMs},
		{"write_timeout_ms", cfg.Server.WriteTimeoutMs},
		{"idle_timeout_ms", cfg.Server.IdleTimeoutMs},
		{"shutdown_timeout_ms", cfg.Server.ShutdownTimeoutMs},
		{"compress_min_bytes", cfg.Server.CompressMinBytes},
	}
	for _, t := range timeouts {
		if t.ms < 0 {
			return fmt.Errorf("%w: server.%s must be >= 0", ErrInvalid, t.name)
		}
	}

	// ------------------------------------------------------------
	// ASSETS
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.Assets.Root) == "" {
		return fmt.Errorf("%w: assets.root is required", ErrInvalid)
	}

	// ------------------------------------------------------------
	// DEVICE IDENTITY (ASCII, non-empty)
	// ------------------------------------------------------------

	for field, v := range map[string]string{
		"device.id":      cfg.Device.ID,
		"device.version": cfg.Device.Version,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalid, field)
		}
		for i := 0; i < len(v); i++ {
			if v[i] > 0x7F {
				return fmt.Errorf("%w: %s must contain ASCII characters only", ErrInvalid, field)
			}
		}
	}

	// ------------------------------------------------------------
	// ENUMS
	// ------------------------------------------------------------

	if _, err := core.ParseVariant(cfg.Telemetry.Canonical); err != nil {
		return fmt.Errorf("%w: telemetry.canonical: %v", ErrInvalid, err)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalid, cfg.Log.Level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, cfg.Log.Format)
	}

	return nil
}
