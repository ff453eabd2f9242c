// Package module implements the module generator: it creates the directory
// skeleton of a new module and renders its files from stubs, reporting the
// outcome of every step.
package module

import "errors"

// Sentinel errors for the module package.
var (
	// ErrModuleExists indicates the module directory already exists.
	ErrModuleExists = errors.New("module with this name already exists")

	// ErrFileExists indicates a target file already exists and was left untouched.
	ErrFileExists = errors.New("file already exists")

	// ErrGenerationRolledBack indicates an atomic generation failed and the
	// partially generated module was removed.
	ErrGenerationRolledBack = errors.New("module generation rolled back")

	// ErrNoStub indicates no stub is mapped for an artifact kind.
	ErrNoStub = errors.New("no stub for artifact")
)
