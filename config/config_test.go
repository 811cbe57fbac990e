package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		expected      Config
		expectedError bool
	}{
		{
			name: "values in the file override defaults",
			file: `
log_file = "/tmp/phalcom.log"
log_level = "debug"
catalog = "types.toml"
`,
			expected: Config{
				LogFile:     "/tmp/phalcom.log",
				LogLevel:    "debug",
				Concurrency: 4,
				Catalog:     "types.toml",
			},
		},
		{
			name:     "an empty file is the default config",
			file:     "",
			expected: New(),
		},
		{
			name:          "invalid TOML is an error",
			file:          "log_file = ",
			expectedError: true,
		},
		{
			name:          "concurrency must be positive",
			file:          "concurrency = 0",
			expectedError: true,
		},
		{
			name:          "log levels must be valid",
			file:          `log_level = "loud"`,
			expectedError: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultPath)
			if err := os.WriteFile(path, []byte(test.file), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			actual, err := Load(path)
			if test.expectedError {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.expected, actual); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(New(), cfg); diff != "" {
		t.Error(diff)
	}
}

func TestLevel(t *testing.T) {
	cfg := New()
	cfg.LogLevel = "warn"
	level, err := cfg.Level()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != slog.LevelWarn {
		t.Errorf("expected warn, got %v", level)
	}
}
