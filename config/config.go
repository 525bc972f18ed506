// Package config handles configuration loading and validation for the
// cairnctl tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cairnlog/cairn/hashing"
)

// Config is the complete tool configuration.
type Config struct {
	// Storage configuration for the node store.
	Storage StorageConfig `toml:"storage"`

	// Hash selects the digest algorithm. Changing it invalidates every
	// root and proof produced under the old one.
	Hash HashConfig `toml:"hash"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	// Path is the sqlite database location.
	Path string `toml:"path"`
}

// HashConfig selects the injected digest.
type HashConfig struct {
	// Algorithm is "blake2b-256" or "sha3-256".
	Algorithm string `toml:"algorithm"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`
	// Format is "text" or "json".
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: defaultStorePath()},
		Hash:    HashConfig{Algorithm: hashing.Blake2b256},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads the TOML file at path, applying defaults for absent fields.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the tool cannot run with.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path must not be empty")
	}
	if _, err := hashing.DigestSize(c.Hash.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown logging.format %q", c.Logging.Format)
	}
	return nil
}

func defaultStorePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "cairn", "cairn.db")
}
