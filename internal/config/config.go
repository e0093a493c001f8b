// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/sanverite/tactical-console/internal/core"
)

// DefaultPort is used when neither the config file, PORT nor --port
// provide one.
const DefaultPort = 3000

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Assets    AssetsConfig    `yaml:"assets"`
	Device    DeviceConfig    `yaml:"device"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

// ---- SERVER ----

type ServerConfig struct {
	Port                int    `yaml:"port"`
	Host                string `yaml:"host"`
	ReadTimeoutMs       int    `yaml:"read_timeout_ms"`
	ReadHeaderTimeoutMs int    `yaml:"read_header_timeout_ms"`
	WriteTimeoutMs      int    `yaml:"write_timeout_ms"`
	IdleTimeoutMs       int    `yaml:"idle_timeout_ms"`
	ShutdownTimeoutMs   int    `yaml:"shutdown_timeout_ms"`

	// Compress enables gzip for clients that accept it.
	Compress         bool `yaml:"compress"`
	CompressMinBytes int  `yaml:"compress_min_bytes"`
}

// ---- ASSETS ----

type AssetsConfig struct {
	Root string `yaml:"root"`
}

// ---- DEVICE ----

// DeviceConfig overrides the identity reported by /api/status.
type DeviceConfig struct {
	ID      string `yaml:"id"`
	Version string `yaml:"version"`
}

// ---- TELEMETRY ----

type TelemetryConfig struct {
	// Canonical selects the schema served at /api/telemetry.
	Canonical string `yaml:"canonical"`

	// Seed makes jitter reproducible; 0 means unseeded.
	Seed uint64 `yaml:"seed"`
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:                DefaultPort,
			ReadTimeoutMs:       5000,
			ReadHeaderTimeoutMs: 2000,
			WriteTimeoutMs:      10000,
			IdleTimeoutMs:       60000,
			ShutdownTimeoutMs:   5000,
			Compress:            true,
			CompressMinBytes:    1024,
		},
		Assets: AssetsConfig{Root: "./dist"},
		Device: DeviceConfig{
			ID:      core.DefaultDeviceID,
			Version: core.DefaultVersion,
		},
		Telemetry: TelemetryConfig{Canonical: string(core.VariantOrientation)},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a config file over Default. Files ending in .json or .jsonc
// may carry comments and trailing commas; anything else is YAML. Unknown
// keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data, isJSON(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config bytes over Default. Empty input yields Default. JSON input is decoded by the
// YAML decoder after comments are stripped, so both formats share the
// yaml struct tags.
func Parse(data []byte, jsonInput bool) (Config, error) {
	cfg := Default()
	if jsonInput {
		data = jsonc.ToJSON(data)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func isJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	}
	return false
}

// ApplyEnv overlays environment settings. Only PORT is recognized.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	v := strings.TrimSpace(getenv("PORT"))
	if v == "" {
		return nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: PORT=%q is not an integer", ErrInvalid, v)
	}
	cfg.Server.Port = port
	return nil
}

// Addr returns the listen address for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Millis converts a millisecond config field to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
