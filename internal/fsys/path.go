package fsys

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathTraversal indicates a path that is absolute or escapes the filesystem root.
var ErrPathTraversal = errors.New("fsys: path escapes root")

// ValidateRelPath ensures relPath is relative and stays below the root.
func ValidateRelPath(relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}
	return nil
}
