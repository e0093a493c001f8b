package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/sanverite/tactical-console/internal/api"
	"github.com/sanverite/tactical-console/internal/assets"
	"github.com/sanverite/tactical-console/internal/clock"
	"github.com/sanverite/tactical-console/internal/config"
	"github.com/sanverite/tactical-console/internal/core"
	"github.com/sanverite/tactical-console/internal/probe"
)

func main() {
	if err := run(os.Args[1:], os.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cliFlags holds parsed command-line values. Only flags that were set
// explicitly override the config file and environment.
type cliFlags struct {
	configPath string
	port       int
	host       string
	assetsRoot string
	canonical  string
	seed       uint64
	logLevel   string
	logFormat  string
	version    bool
}

func newFlagSet(f *cliFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("console", pflag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "YAML or JSONC config file")
	fs.IntVar(&f.port, "port", config.DefaultPort, "listen port (overrides PORT)")
	fs.StringVar(&f.host, "host", "", "listen host (default all interfaces)")
	fs.StringVar(&f.assetsRoot, "assets", "./dist", "static asset root")
	fs.StringVar(&f.canonical, "canonical", string(core.VariantOrientation), "telemetry variant served at /api/telemetry")
	fs.Uint64Var(&f.seed, "seed", 0, "jitter seed (0 is unseeded)")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&f.version, "version", false, "print version information and exit")
	return fs
}

// resolveConfig layers defaults, the config file, PORT and explicit flags,
// then validates and normalizes the result.
func resolveConfig(fs *pflag.FlagSet, f *cliFlags, getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg, getenv); err != nil {
		return config.Config{}, err
	}

	if fs.Changed("port") {
		cfg.Server.Port = f.port
	}
	if fs.Changed("host") {
		cfg.Server.Host = f.host
	}
	if fs.Changed("assets") {
		cfg.Assets.Root = f.assetsRoot
	}
	if fs.Changed("canonical") {
		cfg.Telemetry.Canonical = f.canonical
	}
	if fs.Changed("seed") {
		cfg.Telemetry.Seed = f.seed
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	config.Normalize(&cfg)
	return cfg, nil
}

func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func run(args []string, getenv func(string) string, stdout io.Writer) error {
	var f cliFlags
	fs := newFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if f.version {
		fmt.Fprintf(stdout, "console %s\n", core.DefaultVersion)
		return nil
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := resolveConfig(fs, &f, getenv)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := probe.ProbeAssets(ctx, probe.Config{Root: cfg.Assets.Root})
	switch {
	case errors.Is(err, probe.ErrNoIndex):
		logger.Warn("asset root has no index.html; / will answer 404", "root", cfg.Assets.Root)
	case err != nil:
		logger.Warn("asset probe failed", "root", cfg.Assets.Root, "error", err)
	}
	for _, w := range summary.Warnings {
		logger.Warn("asset probe", "warning", w)
	}
	logger.Info("assets",
		"root", summary.Root,
		"files", summary.Files,
		"bytes", summary.Bytes,
		"digest", summary.Digest,
		"walk_ms", summary.LatenciesMs["walk"],
		"hash_ms", summary.LatenciesMs["hash"],
	)

	devCtx := core.NewContext(clock.Real())
	telemetry := core.NewSimulatedTelemetry(devCtx, core.NewJitter(cfg.Telemetry.Seed))
	canonical, err := core.ParseVariant(cfg.Telemetry.Canonical)
	if err != nil {
		return err
	}

	srv, err := api.NewServer(devCtx, api.Providers{
		Status: core.NewSimulatedStatus(devCtx, core.Identity{
			DeviceID: cfg.Device.ID,
			Version:  cfg.Device.Version,
		}),
		Orientation: telemetry,
		Position:    telemetry,
		Canonical:   canonical,
	}, assets.NewResolver(cfg.Assets.Root), api.ServerOptions{
		Addr:              cfg.Server.Addr(),
		ReadTimeout:       config.Millis(cfg.Server.ReadTimeoutMs),
		ReadHeaderTimeout: config.Millis(cfg.Server.ReadHeaderTimeoutMs),
		WriteTimeout:      config.Millis(cfg.Server.WriteTimeoutMs),
		IdleTimeout:       config.Millis(cfg.Server.IdleTimeoutMs),
		ShutdownTimeout:   config.Millis(cfg.Server.ShutdownTimeoutMs),
		Logger:            logger,
		Compress:          cfg.Server.Compress,
		CompressMinBytes:  cfg.Server.CompressMinBytes,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}
	logger.Info("tactical console running",
		"addr", srv.Addr(),
		"device", cfg.Device.ID,
		"canonical", string(canonical),
		"routes", srv.Routes(),
	)

	select {
	case <-ctx.Done():
	case err := <-srv.Err():
		_ = srv.Stop(context.Background())
		return err
	}
	logger.Info("shutting down")
	if err := srv.Stop(context.Background()); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("stopped")
	return nil
}
