package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv applies MODULAR_* overrides to cfg. Unset variables leave the
// current values in place. environ replaces the process environment when
// non-nil.
func parseEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	return nil
}

// fileEnv holds the variable that relocates the configuration file itself.
type fileEnv struct {
	Path string `env:"MODULAR_CONFIG"`
}

// configPathFromEnv returns MODULAR_CONFIG, or "" when it is unset.
func configPathFromEnv() string {
	v, err := env.ParseAs[fileEnv]()
	if err != nil {
		return ""
	}
	return v.Path
}
