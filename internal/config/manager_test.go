package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "project")

	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
	}{
		{name: "default", want: filepath.Join(root, "modular.yaml")},
		{name: "env", env: "conf/modular.yaml", want: filepath.Join(root, "conf", "modular.yaml")},
		{name: "explicit_wins", explicit: "custom.yaml", env: "conf/modular.yaml", want: filepath.Join(root, "custom.yaml")},
		{name: "absolute", explicit: filepath.Join(root, "..", "etc", "m.yaml"), want: filepath.Join(string(filepath.Separator), "etc", "m.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MODULAR_CONFIG", tt.env)
			if got := ResolvePath(root, tt.explicit); got != tt.want {
				t.Errorf("ResolvePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestManager_LoadValidates(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "generator:\n  extension: go\n")
	m := NewManager(hermeticLoader(nil))

	if _, err := m.Load(path); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("Load() error = %v, want ErrInvalidExtension", err)
	}
	if m.Get() != nil {
		t.Error("Get() should stay nil after a failed Load")
	}
}

func TestManager_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "modular.yaml")
	m := NewManager(hermeticLoader(nil))

	if err := m.Save(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Save() before Load error = %v, want ErrNotInitialized", err)
	}

	cfg, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.FromFile() {
		t.Error("FromFile() = true before the file exists")
	}
	cfg.Modules.Path = "src/Modules"

	if err := m.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	reloaded, err := NewManager(hermeticLoader(nil)).Load(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Modules.Path != "src/Modules" || reloaded.Generator.Namespace != DefaultNamespace {
		t.Errorf("reloaded = %+v", reloaded)
	}
	if m.Path() != path {
		t.Errorf("Path() = %q, want %q", m.Path(), path)
	}
}
