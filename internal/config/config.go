// Package config provides configuration loading for the midway CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvPrefix marks environment variables read by Load.
	EnvPrefix = "MIDWAY_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Search SearchConfig `koanf:"search"`
	Bench  BenchConfig  `koanf:"bench"`
}

// LogConfig selects logger verbosity and encoding.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SearchConfig bounds a single search.
type SearchConfig struct {
	// MaxDiscoveries caps discovered states per search; 0 means no cap.
	MaxDiscoveries int `koanf:"max_discoveries"`
	// Timeout cancels a search after the given duration; 0 means none.
	Timeout time.Duration `koanf:"timeout"`
}

// BenchConfig drives the bench command.
type BenchConfig struct {
	Workers int   `koanf:"workers"`
	Seed    int64 `koanf:"seed"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Search: SearchConfig{
			MaxDiscoveries: 0,
			Timeout:        0,
		},
		Bench: BenchConfig{
			Workers: 4,
			Seed:    1,
		},
	}
}

// Load reads configuration from a YAML file, then overrides it with
// environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (MIDWAY_LOG_LEVEL, MIDWAY_SEARCH_MAX_DISCOVERIES, ...)
//  2. YAML file at path, if path is not empty
//  3. Default()
//
// Environment variables drop the prefix, are lowercased and split on the
// first underscore only:
//
//	MIDWAY_SEARCH_MAX_DISCOVERIES -> search.max_discoveries
//	MIDWAY_BENCH_WORKERS          -> bench.workers
func Load(path string) (*Config, error) {
	var content []byte
	if path != "" {
		b, err := readFile(path)
		if err != nil {
			return nil, err
		}
		content = b
	}
	return load(content)
}

// load applies content and the environment over Default.
func load(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps MIDWAY_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// readFile reads a config file, rejecting anything larger than 1MB.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalid, path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalid, path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log.format must be 'json' or 'console', got %q", ErrInvalid, c.Log.Format)
	}
	if c.Search.MaxDiscoveries < 0 {
		return fmt.Errorf("%w: search.max_discoveries must be >= 0, got %d", ErrInvalid, c.Search.MaxDiscoveries)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0, got %s", ErrInvalid, c.Search.Timeout)
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("%w: bench.workers must be >= 1, got %d", ErrInvalid, c.Bench.Workers)
	}

	return nil
}
