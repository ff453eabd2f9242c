package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads modular.yaml and layers environment overrides on top.
type Loader struct {
	logger  *slog.Logger
	environ map[string]string // nil means the process environment
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// WithEnvironment returns a copy of the Loader that reads overrides from
// environ instead of the process environment.
func (l *Loader) WithEnvironment(environ map[string]string) *Loader {
	return &Loader{logger: l.logger, environ: environ}
}

// Load reads the configuration file at path and returns the merged Config.
// A missing file yields the compiled defaults. Environment overrides take
// precedence over file values. The result is not validated.
func (l *Loader) Load(path string) (*Config, bool, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(filepath.Clean(path), cfg)
	if err != nil {
		return nil, false, err
	}
	if !loaded {
		l.logger.Debug("config file not found, using defaults", "path", path)
	}

	if err := parseEnv(cfg, l.environ); err != nil {
		return nil, loaded, err
	}
	normalize(cfg)

	return cfg, loaded, nil
}

// normalize trims whitespace from list entries and drops empty ones.
func normalize(cfg *Config) {
	active := make([]string, 0, len(cfg.Modules.Active))
	for _, name := range cfg.Modules.Active {
		if name = strings.TrimSpace(name); name != "" {
			active = append(active, name)
		}
	}
	cfg.Modules.Active = active
	cfg.Modules.Path = strings.TrimSpace(cfg.Modules.Path)
}

// loadYAMLFile unmarshals the file at path over target. Returns (false, nil)
// when the file does not exist.
func loadYAMLFile(path string, target *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), ErrInvalidYAML, err)
	}
	return true, nil
}
