// Package config loads tool configuration from TOML files.
//
// Configuration is optional: every field has a working default, and a
// missing file is not an error. Flags layered on top by the CLI always win.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in configuration.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the root of the TOML configuration file.
type Config struct {
	Minimize Minimize `toml:"minimize"`
	Cache    Cache    `toml:"cache"`
	Serve    Serve    `toml:"serve"`
}

// Minimize configures the minimization engine.
type Minimize struct {
	// MaxIterations caps each run. Zero or negative falls back to the
	// engine default.
	MaxIterations int `toml:"max_iterations"`

	// Unbounded disables the iteration cap.
	Unbounded bool `toml:"unbounded"`

	// Stats enables per-run statistics in output.
	Stats bool `toml:"stats"`

	// Workers bounds batch concurrency. Zero means GOMAXPROCS.
	Workers int `toml:"workers"`
}

// Cache configures verdict memoization.
type Cache struct {
	// Backend selects the cache implementation: file, redis, or none.
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory. Empty uses the
	// platform cache directory.
	Dir string `toml:"dir"`

	// RedisAddr is the host:port of the redis backend.
	RedisAddr string `toml:"redis_addr"`

	// TTL expires entries after the given duration, for example "168h".
	// Zero keeps entries forever.
	TTL duration `toml:"ttl"`
}

// Serve configures the HTTP API server.
type Serve struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Cache: Cache{Backend: BackendFile, RedisAddr: "localhost:6379"},
		Serve: Serve{Addr: "localhost:8080"},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads the file at path, treating a missing file as the
// default configuration. An empty path always yields the default.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone, "":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New("cache backend redis requires redis_addr")
	}
	if c.Minimize.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Minimize.Workers)
	}
	return nil
}

// CacheTTL returns the configured entry lifetime.
func (c Config) CacheTTL() time.Duration { return time.Duration(c.Cache.TTL) }

// duration wraps time.Duration with TOML string decoding ("24h", "90m").
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}
