package loader

import (
	"fmt"
	"slices"
	"sync"
)

// Route is a route file registered by a module.
type Route struct {
	Module string
	Path   string
}

// Registry is an in-process Host that records every registration. It is
// used to inspect what a boot would register, and by Go hosts that wire
// modules from the recorded paths.
type Registry struct {
	mu           sync.RWMutex
	cached       bool
	routes       []Route
	helpers      []Route
	views        map[string]string
	translations map[string]string
	migrations   []string
}

// NewRegistry creates an empty Registry. With routesCached set, the loader
// skips route files as it would for a host with a route cache.
func NewRegistry(routesCached bool) *Registry {
	return &Registry{
		cached:       routesCached,
		views:        make(map[string]string),
		translations: make(map[string]string),
	}
}

// RoutesAreCached implements Host.
func (r *Registry) RoutesAreCached() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cached
}

// LoadRoutes implements Host.
func (r *Registry) LoadRoutes(module, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, Route{Module: module, Path: path})
	return nil
}

// LoadHelper implements Host.
func (r *Registry) LoadHelper(module, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.helpers = append(r.helpers, Route{Module: module, Path: path})
	return nil
}

// LoadViewsFrom implements Host. A namespace can be registered once.
func (r *Registry) LoadViewsFrom(path, namespace string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.views, "views", path, namespace)
}

// LoadTranslationsFrom implements Host. A namespace can be registered once.
func (r *Registry) LoadTranslationsFrom(path, namespace string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.translations, "translations", path, namespace)
}

// LoadMigrationsFrom implements Host.
func (r *Registry) LoadMigrationsFrom(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.migrations, path) {
		r.migrations = append(r.migrations, path)
	}
	return nil
}

// ViewPath returns the view directory registered under namespace.
func (r *Registry) ViewPath(namespace string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.views[namespace]
	return p, ok
}

// TranslationPath returns the translation directory registered under namespace.
func (r *Registry) TranslationPath(namespace string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.translations[namespace]
	return p, ok
}

// MigrationPaths returns the registered migration directories in registration order.
func (r *Registry) MigrationPaths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.migrations)
}

// Routes returns the registered route files in registration order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.routes)
}

// Helpers returns the loaded helper files in load order.
func (r *Registry) Helpers() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.helpers)
}

func register(m map[string]string, kind, path, namespace string) error {
	if existing, ok := m[namespace]; ok && existing != path {
		return fmt.Errorf("%w: %s %q -> %s", ErrNamespaceTaken, kind, namespace, existing)
	}
	m[namespace] = path
	return nil
}
