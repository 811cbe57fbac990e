// Package config loads the language server configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"
)

const DefaultPath = "phalcomlsp.toml"

// Config of the language server.
type Config struct {
	// LogFile receives JSON logs. stdout is reserved for the protocol.
	LogFile string `toml:"log_file"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// Concurrency is the number of messages handled at once.
	Concurrency int64 `toml:"concurrency"`
	// Catalog is an optional TOML file of types and objects added to the builtin catalog.
	Catalog string `toml:"catalog"`
}

// New returns the default configuration.
func New() Config {
	return Config{
		LogFile:     "phalcomlsp.log",
		LogLevel:    "info",
		Concurrency: 4,
	}
}

// ParseError represents a TOML decode failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the config file at path. A missing file results in the default configuration.
// Values that aren't set in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Err: err}
	}
	if err = cfg.Validate(); err != nil {
		return cfg, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate the configuration.
func (cfg Config) Validate() error {
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level of LogLevel.
func (cfg Config) Level() (level slog.Level, err error) {
	if err = level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}
