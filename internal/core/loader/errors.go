package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for module loading.
var (
	// ErrHostPanic indicates the host panicked while registering a module.
	ErrHostPanic = errors.New("loader: host panicked")

	// ErrModulesPath indicates a modules path that cannot be used.
	ErrModulesPath = errors.New("loader: invalid modules path")

	// ErrNamespaceTaken indicates a view or translation namespace registered
	// twice with different directories.
	ErrNamespaceTaken = errors.New("loader: namespace already registered")
)

// ModuleError records the failure of one module during Boot.
type ModuleError struct {
	Module string
	Step   Step
	Err    error
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("module %s: %s: %v", e.Module, e.Step, e.Err)
}

func (e *ModuleError) Unwrap() error {
	return e.Err
}
