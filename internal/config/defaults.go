package config

import (
	"path/filepath"

	"github.com/modu-ai/modular/internal/defs"
)

// Default value constants.
const (
	DefaultExtension = ".go"
	DefaultNamespace = "example.com/app"
	DefaultFormat    = true
	DefaultAtomic    = false
)

// DefaultModulesPath is the modules root used when none is configured.
var DefaultModulesPath = filepath.Join("app", defs.ModulesSegment)

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Modules: ModulesConfig{
			Path:   DefaultModulesPath,
			Active: []string{},
		},
		Generator: GeneratorConfig{
			Extension: DefaultExtension,
			Namespace: DefaultNamespace,
			Format:    DefaultFormat,
			Atomic:    DefaultAtomic,
		},
	}
}
