package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// GoModulePath returns the module path declared in root/go.mod.
func GoModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoGoModule
	}
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}
	mod := modfile.ModulePath(data)
	if mod == "" {
		return "", fmt.Errorf("%w: go.mod declares no module", ErrNoGoModule)
	}
	return mod, nil
}

// DetectNamespace returns the root import path for generated packages.
// Module packages live at <namespace>/Modules/<Name>, so the namespace is
// the go.mod module path joined with the parent of modulesPath.
func DetectNamespace(root, modulesPath string) (string, error) {
	mod, err := GoModulePath(root)
	if err != nil {
		return "", err
	}
	parent := filepath.ToSlash(filepath.Dir(filepath.Clean(modulesPath)))
	if parent == "." {
		return mod, nil
	}
	return path.Join(mod, parent), nil
}
