package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modular.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func hermeticLoader(environ map[string]string) *Loader {
	if environ == nil {
		environ = map[string]string{}
	}
	return NewLoader(nil).WithEnvironment(environ)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, loaded, err := hermeticLoader(nil).Load(filepath.Join(t.TempDir(), "modular.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded {
		t.Error("loaded = true for a missing file")
	}
	def := NewDefaultConfig()
	if cfg.Modules.Path != def.Modules.Path || cfg.Generator.Extension != def.Generator.Extension {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, def)
	}
	if !cfg.Generator.Format {
		t.Error("Generator.Format default should be true")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `modules:
  path: src/Modules
  active: [Blog, " Shop ", ""]
generator:
  namespace: github.com/acme/shop
  atomic: true
`)

	cfg, loaded, err := hermeticLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded {
		t.Error("loaded = false for an existing file")
	}
	if cfg.Modules.Path != "src/Modules" {
		t.Errorf("Modules.Path = %q", cfg.Modules.Path)
	}
	if want := []string{"Blog", "Shop"}; !slices.Equal(cfg.Modules.Active, want) {
		t.Errorf("Modules.Active = %v, want %v", cfg.Modules.Active, want)
	}
	if cfg.Generator.Namespace != "github.com/acme/shop" || !cfg.Generator.Atomic {
		t.Errorf("Generator = %+v", cfg.Generator)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Generator.Extension != DefaultExtension || !cfg.Generator.Format {
		t.Errorf("unset generator keys lost their defaults: %+v", cfg.Generator)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "modules: [unterminated\n")
	_, _, err := hermeticLoader(nil).Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `modules:
  path: src/Modules
generator:
  extension: .go
`)

	tests := []struct {
		name    string
		environ map[string]string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "modules_path",
			environ: map[string]string{"MODULAR_MODULES_PATH": "modules"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Modules.Path != "modules" {
					t.Errorf("Modules.Path = %q, want modules", cfg.Modules.Path)
				}
			},
		},
		{
			name:    "active_modules_comma_separated",
			environ: map[string]string{"MODULAR_ACTIVE_MODULES": "Blog, Shop"},
			check: func(t *testing.T, cfg *Config) {
				if want := []string{"Blog", "Shop"}; !slices.Equal(cfg.Modules.Active, want) {
					t.Errorf("Modules.Active = %v, want %v", cfg.Modules.Active, want)
				}
			},
		},
		{
			name: "generator_fields",
			environ: map[string]string{
				"MODULAR_STUBS_DIR": "stubs",
				"MODULAR_EXTENSION": ".php",
				"MODULAR_NAMESPACE": "acme.dev/app",
				"MODULAR_FORMAT":    "false",
				"MODULAR_ATOMIC":    "true",
			},
			check: func(t *testing.T, cfg *Config) {
				want := GeneratorConfig{StubsDir: "stubs", Extension: ".php", Namespace: "acme.dev/app", Format: false, Atomic: true}
				if cfg.Generator != want {
					t.Errorf("Generator = %+v, want %+v", cfg.Generator, want)
				}
			},
		},
		{
			name:    "unset_keeps_file_values",
			environ: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Modules.Path != "src/Modules" || !cfg.Generator.Format {
					t.Errorf("file values lost: %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, _, err := hermeticLoader(tt.environ).Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Parallel()

	_, _, err := hermeticLoader(map[string]string{"MODULAR_ATOMIC": "sometimes"}).Load(filepath.Join(t.TempDir(), "none.yaml"))
	if !errors.Is(err, ErrInvalidEnv) {
		t.Errorf("Load() error = %v, want ErrInvalidEnv", err)
	}
}
