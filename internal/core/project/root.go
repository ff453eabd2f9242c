package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modu-ai/modular/internal/defs"
)

// markers identify a project root, in order of preference.
var markers = []string{defs.ConfigYAML, "go.mod"}

// @MX:ANCHOR: [AUTO] FindProjectRoot anchors every generated path to one project directory
// @MX:REASON: [AUTO] fan_in=3, called from FindProjectRootOrCurrent, the cli root resolution and tests
// FindProjectRoot walks up from start until it finds a directory holding
// modular.yaml or go.mod, and returns that directory as an absolute path.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		for _, m := range markers {
			if info, err := os.Stat(filepath.Join(dir, m)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s or go.mod in %s or any parent directory", ErrNoProjectRoot, defs.ConfigYAML, start)
		}
		dir = parent
	}
}

// FindProjectRootOrCurrent is like FindProjectRoot but returns start itself
// when no marker is found.
func FindProjectRootOrCurrent(start string) (string, error) {
	if root, err := FindProjectRoot(start); err == nil {
		return root, nil
	}
	return filepath.Abs(start)
}
