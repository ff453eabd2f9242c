// Package project locates the project root and derives project defaults,
// such as the root import path, from the files found there.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrNoProjectRoot indicates no directory up the tree holds a project marker.
	ErrNoProjectRoot = errors.New("project root not found")

	// ErrNoGoModule indicates go.mod is missing or declares no module path.
	ErrNoGoModule = errors.New("no go module found")
)
