// Package config loads service configuration from an optional TOML
// file with environment variable overrides. A missing file yields the
// defaults; environment variables always win over the file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vastuplan/vastuplan/pkg/errors"
)

// Defaults applied when neither the file nor the environment sets a
// value.
const (
	DefaultAddr         = ":8000"
	DefaultOutputDir    = "generated_plans"
	DefaultRetention    = 24 * time.Hour
	DefaultListLimit    = 50
	DefaultStoreBackend = "memory"
)

// Config holds the full service configuration.
type Config struct {
	Server Server      `toml:"server"`
	Render Render      `toml:"render"`
	Cache  CacheConfig `toml:"cache"`
	Store  StoreConfig `toml:"store"`
}

// Server configures the HTTP listener and artifact retention.
type Server struct {
	Addr string `toml:"addr"`

	// OutputDir is where artifact files are written and served from.
	OutputDir string `toml:"output_dir"`

	// Retention is how long artifacts and records are kept before a
	// cleanup sweep removes them.
	Retention duration `toml:"retention"`

	// ListLimit caps the records returned by the plan listing.
	ListLimit int `toml:"list_limit"`
}

// Render configures canvas parameters. Zero values fall back to the
// renderer defaults.
type Render struct {
	BasePxPerMeter int `toml:"base_px_per_meter"`
	MaxCanvasPx    int `toml:"max_canvas_px"`
}

// CacheConfig configures the render byte cache.
type CacheConfig struct {
	// Dir enables the file cache when set. Empty disables caching.
	Dir string `toml:"dir"`
}

// StoreConfig selects the plan record backend.
type StoreConfig struct {
	// Backend is one of memory, file or redis.
	Backend string `toml:"backend"`

	// Dir is the record directory for the file backend.
	Dir string `toml:"dir"`

	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// duration wraps time.Duration for TOML decoding from strings like
// "24h" or "30m".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// RetentionDuration returns the configured retention as a time.Duration.
func (s Server) RetentionDuration() time.Duration {
	return time.Duration(s.Retention)
}

// Default returns the configuration with all defaults applied.
func Default() Config {
	return Config{
		Server: Server{
			Addr:      DefaultAddr,
			OutputDir: DefaultOutputDir,
			Retention: duration(DefaultRetention),
			ListLimit: DefaultListLimit,
		},
		Store: StoreConfig{
			Backend: DefaultStoreBackend,
		},
	}
}

// Load reads configuration from path, if present, and applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing config file %s", path)
			}
		}
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values from VASTUPLAN_* variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("VASTUPLAN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("VASTUPLAN_OUTPUT_DIR"); v != "" {
		cfg.Server.OutputDir = v
	}
	if v := os.Getenv("VASTUPLAN_RETENTION"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Server.Retention = duration(parsed)
		}
	}
	if v := os.Getenv("VASTUPLAN_LIST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.ListLimit = n
		}
	}
	if v := os.Getenv("VASTUPLAN_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("VASTUPLAN_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("VASTUPLAN_STORE_DIR"); v != "" {
		cfg.Store.Dir = v
	}
	if v := os.Getenv("VASTUPLAN_REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
}

func validate(cfg Config) error {
	switch cfg.Store.Backend {
	case "memory", "file", "redis":
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown store backend: %q (must be memory, file or redis)", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "redis" && cfg.Store.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "redis backend requires redis_addr")
	}
	if cfg.Server.RetentionDuration() <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "retention must be positive")
	}
	return nil
}
