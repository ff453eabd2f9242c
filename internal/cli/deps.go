// Package cli provides the Cobra command tree and dependency wiring for the
// modular CLI. This file defines the Dependencies struct (Composition Root)
// that builds every component from the loaded configuration.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modular/internal/config"
	"github.com/modu-ai/modular/internal/core/loader"
	"github.com/modu-ai/modular/internal/core/module"
	"github.com/modu-ai/modular/internal/core/project"
	"github.com/modu-ai/modular/internal/fsys"
	"github.com/modu-ai/modular/internal/template"
	"github.com/modu-ai/modular/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the
// Composition Root: the only place where concrete types are instantiated
// and wired together.
type Dependencies struct {
	Root     string
	Config   *config.Manager
	FS       fsys.FS
	Stubs    fs.FS
	Headless *ui.HeadlessManager
	Console  *ui.Console
	Logger   *slog.Logger
}

// deps is the dependencies instance of the running command, set by
// InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all components
// @MX:REASON: [AUTO] fan_in=3, called from the root PersistentPreRunE and the cli tests
// InitDependencies resolves the project root, loads the configuration and
// builds the filesystem, stub source and terminal components.
func InitDependencies(cmd *cobra.Command) error {
	logger := newLogger(getBoolFlag(cmd, "verbose"), cmd.ErrOrStderr())

	root, err := resolveRoot(getStringFlag(cmd, "root"))
	if err != nil {
		return err
	}

	mgr := config.NewManager(config.NewLoader(logger))
	cfg, err := mgr.Load(config.ResolvePath(root, getStringFlag(cmd, "config")))
	if err != nil {
		return err
	}

	stubsDir := cfg.Generator.StubsDir
	if stubsDir != "" && !filepath.IsAbs(stubsDir) {
		stubsDir = filepath.Join(root, stubsDir)
	}
	stubs, err := template.StubSource(stubsDir)
	if err != nil {
		return err
	}

	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "no-interaction") {
		hm.ForceHeadless(true)
	}

	deps = &Dependencies{
		Root:     root,
		Config:   mgr,
		FS:       fsys.NewOS(root),
		Stubs:    stubs,
		Headless: hm,
		Console:  ui.NewConsole(ui.NewTheme(), hm, cmd.OutOrStdout()),
		Logger:   logger,
	}
	logger.Debug("dependencies initialized", "root", root, "config", mgr.Path(), "custom_stubs", stubsDir != "")
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// NewGenerator builds a module generator from the loaded configuration.
func (d *Dependencies) NewGenerator(onStep func(module.Step)) *module.Generator {
	cfg := d.Config.Get()
	return module.NewGenerator(d.FS, template.NewRenderer(d.Stubs), module.GeneratorOptions{
		ModulesPath: cfg.Modules.Path,
		Extension:   cfg.Generator.Extension,
		Namespace:   cfg.Generator.Namespace,
		Format:      cfg.Generator.Format,
		OnStep:      onStep,
	}, d.Logger)
}

// NewLoader builds a module loader registering with host.
func (d *Dependencies) NewLoader(host loader.Host) *loader.Loader {
	cfg := d.Config.Get()
	return loader.New(d.FS, loader.Options{
		ModulesPath: cfg.Modules.Path,
		Active:      cfg.Modules.Active,
		Extension:   cfg.Generator.Extension,
	}, host, d.Logger)
}

// newLogger returns a debug text logger on w when verbose, a discarding
// logger otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// resolveRoot returns the absolute project root: the --root flag when set,
// otherwise the nearest directory above the working directory holding
// modular.yaml or go.mod, falling back to the working directory.
func resolveRoot(flag string) (string, error) {
	root := flag
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		if root, err = project.FindProjectRootOrCurrent(wd); err != nil {
			return "", err
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}
	return abs, nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
