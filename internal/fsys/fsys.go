// Package fsys provides the filesystem abstraction shared by the module
// generator and the module loader. Both backends are go-billy filesystems:
// the OS backend is rooted at the project root, the in-memory backend is
// used by tests.
package fsys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// FS is the set of filesystem operations the generator and loader rely on.
// Paths are relative to the filesystem root.
type FS interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates the file at path, creating parent
	// directories as needed.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates path and any missing parents. It is a no-op when the
	// directory already exists.
	MkdirAll(path string, perm fs.FileMode) error

	// ListDirs returns the sorted names of the immediate subdirectories of
	// path. Symbolic links to directories are included.
	ListDirs(path string) ([]string, error)

	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
}

// billyFS adapts a billy.Filesystem to FS.
type billyFS struct {
	fs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(bfs billy.Filesystem) FS {
	return &billyFS{fs: bfs}
}

// NewOS returns an FS rooted at the given directory on disk.
func NewOS(root string) FS {
	return New(osfs.New(filepath.Clean(root)))
}

// NewMemory returns an empty in-memory FS.
func NewMemory() FS {
	return New(memfs.New())
}

func (b *billyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

func (b *billyFS) IsDir(path string) bool {
	info, err := b.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (b *billyFS) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (b *billyFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := b.fs.MkdirAll(dir, fs.ModeDir|0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := util.WriteFile(b.fs, path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (b *billyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

func (b *billyFS) ListDirs(path string) ([]string, error) {
	entries, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	var dirs []string
	for _, e := range entries {
		switch {
		case e.IsDir():
			dirs = append(dirs, e.Name())
		case e.Mode()&fs.ModeSymlink != 0 && b.IsDir(filepath.Join(path, e.Name())):
			dirs = append(dirs, e.Name())
		}
	}
	slices.Sort(dirs)
	return dirs, nil
}

func (b *billyFS) RemoveAll(path string) error {
	if err := util.RemoveAll(b.fs, path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
