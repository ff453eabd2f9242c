// Package loader discovers generated modules at boot and registers their
// routes, helpers, views, translations and migrations with a Host.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/modu-ai/modular/internal/defs"
	"github.com/modu-ai/modular/internal/fsys"
	"github.com/modu-ai/modular/pkg/models"
)

// Step names a registration step inside a module.
type Step string

const (
	StepWebRoutes    Step = "web-routes"
	StepAPIRoutes    Step = "api-routes"
	StepHelper       Step = "helper"
	StepViews        Step = "views"
	StepTranslations Step = "translations"
	StepMigrations   Step = "migrations"
)

// Options configures a Loader.
type Options struct {
	ModulesPath string   // Modules root, relative to the filesystem root.
	Active      []string // Explicit active modules. Empty means every directory found.
	Extension   string   // Extension of route and helper files, e.g. ".go".
}

// ModuleReport lists what was registered for one module.
type ModuleReport struct {
	Name         string
	Routes       []string // web first, then api
	RoutesCached bool
	Helper       string // empty when absent or already loaded
	Views        string
	Translations string
	Migrations   string
	Err          error
}

// Registered reports whether anything was handed to the host.
func (m ModuleReport) Registered() bool {
	return len(m.Routes) > 0 || m.Helper != "" || m.Views != "" || m.Translations != "" || m.Migrations != ""
}

// BootReport aggregates the module reports of one Boot.
type BootReport struct {
	Modules []ModuleReport
}

// Names returns the names of the modules that were booted, in order.
func (r *BootReport) Names() []string {
	names := make([]string, 0, len(r.Modules))
	for _, m := range r.Modules {
		names = append(names, m.Name)
	}
	return names
}

// Failed returns the modules whose registration returned an error.
func (r *BootReport) Failed() []ModuleReport {
	var out []ModuleReport
	for _, m := range r.Modules {
		if m.Err != nil {
			out = append(out, m)
		}
	}
	return out
}

// Loader registers modules found under a modules root with a Host.
type Loader struct {
	fs     fsys.FS
	opts   Options
	host   Host
	logger *slog.Logger

	mu       sync.Mutex
	included map[string]struct{} // helper files already loaded
}

// New creates a Loader reading modules from fs.
func New(fs fsys.FS, opts Options, host Host, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts.ModulesPath = filepath.Clean(opts.ModulesPath)
	return &Loader{
		fs:       fs,
		opts:     opts,
		host:     host,
		logger:   logger,
		included: make(map[string]struct{}),
	}
}

// Discover returns the active module names. A missing modules root yields
// no modules and no error. Names on the active list must be valid module
// names so they cannot point outside the modules root.
func (l *Loader) Discover() ([]string, error) {
	if err := fsys.ValidateRelPath(l.opts.ModulesPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModulesPath, err)
	}
	if !l.fs.IsDir(l.opts.ModulesPath) {
		l.logger.Debug("modules directory not found", "path", l.opts.ModulesPath)
		return nil, nil
	}
	if len(l.opts.Active) > 0 {
		for _, name := range l.opts.Active {
			if !models.ValidModuleName(name) {
				return nil, fmt.Errorf("%w: active module %q", models.ErrInvalidModuleName, name)
			}
		}
		return append([]string(nil), l.opts.Active...), nil
	}
	names, err := l.fs.ListDirs(l.opts.ModulesPath)
	if err != nil {
		return nil, fmt.Errorf("discover modules: %w", err)
	}
	return names, nil
}

// @MX:ANCHOR: [AUTO] Boot is the startup hook that makes every module visible to the host.
// @MX:REASON: [AUTO] fan_in=2, called from cli module:list and host applications embedding the loader
// Boot registers every active module with the host, in discovery order.
//
// Each module runs inside its own failure boundary: an error or panic from
// the host stops that module only, and loading continues with the next one.
// Registrations made before a failure stay in effect. The returned error
// joins every *ModuleError.
func (l *Loader) Boot(ctx context.Context) (*BootReport, error) {
	names, err := l.Discover()
	if err != nil {
		return nil, err
	}

	report := &BootReport{Modules: make([]ModuleReport, 0, len(names))}
	var errs []error

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		mr := l.bootModule(name)
		if mr.Err != nil {
			l.logger.Error("module registration failed", "module", name, "error", mr.Err)
			errs = append(errs, mr.Err)
		}
		report.Modules = append(report.Modules, mr)
	}

	l.logger.Info("modules booted", "count", len(report.Modules), "failed", len(report.Failed()))
	return report, errors.Join(errs...)
}

// bootModule registers a single module, converting host panics into errors.
func (l *Loader) bootModule(name string) (mr ModuleReport) {
	mr.Name = name
	dir := filepath.Join(l.opts.ModulesPath, name)
	step := StepWebRoutes

	defer func() {
		if r := recover(); r != nil {
			mr.Err = &ModuleError{Module: name, Step: step, Err: fmt.Errorf("%w: %v", ErrHostPanic, r)}
		}
	}()

	fail := func(err error) ModuleReport {
		mr.Err = &ModuleError{Module: name, Step: step, Err: err}
		return mr
	}

	if l.host.RoutesAreCached() {
		mr.RoutesCached = true
	} else {
		for _, rf := range []struct {
			step Step
			file string
		}{
			{StepWebRoutes, defs.WebRoutesFile},
			{StepAPIRoutes, defs.APIRoutesFile},
		} {
			step = rf.step
			path := filepath.Join(dir, rf.file+l.opts.Extension)
			if !l.isFile(path) {
				continue
			}
			if err := l.host.LoadRoutes(name, path); err != nil {
				return fail(err)
			}
			mr.Routes = append(mr.Routes, path)
		}
	}

	step = StepHelper
	helper := filepath.Join(dir, defs.HelperFile+l.opts.Extension)
	if l.isFile(helper) && l.markIncluded(helper) {
		if err := l.host.LoadHelper(name, helper); err != nil {
			return fail(err)
		}
		mr.Helper = helper
	}

	step = StepViews
	if views := filepath.Join(dir, defs.ViewsDir); l.fs.IsDir(views) {
		if err := l.host.LoadViewsFrom(views, name); err != nil {
			return fail(err)
		}
		mr.Views = views
	}

	step = StepTranslations
	if trans := filepath.Join(dir, defs.TranslationsDir); l.fs.IsDir(trans) {
		if err := l.host.LoadTranslationsFrom(trans, name); err != nil {
			return fail(err)
		}
		mr.Translations = trans
	}

	step = StepMigrations
	if migrations := filepath.Join(dir, defs.MigrationsDir); l.fs.IsDir(migrations) {
		if err := l.host.LoadMigrationsFrom(migrations); err != nil {
			return fail(err)
		}
		mr.Migrations = migrations
	}

	l.logger.Debug("module registered", "module", name, "registered", mr.Registered())
	return mr
}

// markIncluded records path as loaded and reports whether it was new.
func (l *Loader) markIncluded(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.included[path]; ok {
		return false
	}
	l.included[path] = struct{}{}
	return true
}

func (l *Loader) isFile(path string) bool {
	ok, err := l.fs.Exists(path)
	return err == nil && ok && !l.fs.IsDir(path)
}
