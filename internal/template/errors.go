package template

import "errors"

// Sentinel errors for stub rendering.
var (
	// ErrStubNotFound indicates the requested stub does not exist in the stub source.
	ErrStubNotFound = errors.New("template: stub not found")

	// ErrUnexpandedToken indicates a placeholder token remains after substitution.
	ErrUnexpandedToken = errors.New("template: unexpanded placeholder token")

	// ErrStubsDir indicates the configured stubs directory cannot be used.
	ErrStubsDir = errors.New("template: invalid stubs directory")

	// ErrFormat indicates generated Go source could not be formatted.
	ErrFormat = errors.New("template: format generated source")
)
