package loader

// Host is the application the modules are registered with. Paths are
// relative to the loader's filesystem root.
type Host interface {
	// RoutesAreCached reports whether the host already has a route cache,
	// in which case route files are not loaded.
	RoutesAreCached() bool

	// LoadRoutes registers the routes declared in the file at path.
	LoadRoutes(module, path string) error

	// LoadHelper loads the module helper file at path.
	LoadHelper(module, path string) error

	// LoadViewsFrom registers a view directory under namespace.
	LoadViewsFrom(path, namespace string) error

	// LoadTranslationsFrom registers a translation directory under namespace.
	LoadTranslationsFrom(path, namespace string) error

	// LoadMigrationsFrom registers a migration directory.
	LoadMigrationsFrom(path string) error
}
