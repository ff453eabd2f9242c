package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modular/internal/core/module"
	"github.com/modu-ai/modular/pkg/models"
)

// errModuleNameRequired is returned when no name is given and prompting is not possible.
var errModuleNameRequired = errors.New("module name is required (pass it as an argument or run interactively)")

var makeModuleCmd = &cobra.Command{
	Use:   "make:module [name]",
	Short: "Create a new module skeleton",
	Long: `Create a module directory under the configured modules path with the
standard subdirectories, web and api route files and a helper file.

Examples:
  modular make:module blog
  modular make:module blog_post --with-controller --with-model --with-migration
  modular make:module shop --atomic    Remove the module again if any file fails`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMakeModule,
}

func init() {
	rootCmd.AddCommand(makeModuleCmd)

	makeModuleCmd.Flags().Bool("with-controller", false, "Generate Controllers/<Name>Controller")
	makeModuleCmd.Flags().Bool("with-migration", false, "Generate a create-table migration")
	makeModuleCmd.Flags().Bool("with-model", false, "Generate Models/<Name>")
	makeModuleCmd.Flags().Bool("with-repo", false, "Generate Repositories/<Name>Repository")
	makeModuleCmd.Flags().Bool("with-interface", false, "Generate Interfaces/<Name>RepositoryInterface")
	makeModuleCmd.Flags().Bool("atomic", false, "Roll the module back if any file cannot be written (overrides generator.atomic)")
}

// @MX:ANCHOR: [AUTO] runMakeModule is the make:module entry point
// @MX:REASON: [AUTO] fan_in=2, called from make:module RunE and the cli tests
func runMakeModule(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	cfg := deps.Config.Get()

	req := module.GenerateRequest{
		WithController: getBoolFlag(cmd, "with-controller"),
		WithMigration:  getBoolFlag(cmd, "with-migration"),
		WithModel:      getBoolFlag(cmd, "with-model"),
		WithRepository: getBoolFlag(cmd, "with-repo"),
		WithInterface:  getBoolFlag(cmd, "with-interface"),
		Atomic:         cfg.Generator.Atomic || getBoolFlag(cmd, "atomic"),
	}
	if len(args) > 0 {
		req.Name = args[0]
	}

	if strings.TrimSpace(req.Name) == "" {
		if deps.Headless.IsHeadless() {
			return errModuleNameRequired
		}
		if err := promptModule(&req); err != nil {
			return err
		}
	}

	bar := deps.Console.Start("Generating module "+req.Name, req.StepCount())
	gen := deps.NewGenerator(func(s module.Step) {
		bar.SetTitle(stepTitle(s))
		bar.Increment(1)
	})
	report, err := gen.Generate(cmd.Context(), req)
	bar.Done()

	if errors.Is(err, module.ErrModuleExists) {
		_, _ = fmt.Fprintf(out, "%s Module with this name already exists\n", symError())
		return err
	}
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return err
	}
	if failures := report.Failures(); len(failures) > 0 {
		return fmt.Errorf("%d file(s) could not be written: %w", len(failures), failures[0].Err)
	}

	printSummary(out, report, deps.Root)
	return nil
}

// stepTitle is the progress title shown after a step.
func stepTitle(s module.Step) string {
	if s.Kind == module.StepDirectories {
		return "directories"
	}
	return filepath.Base(s.Path)
}

// printReport writes one line per step outcome.
func printReport(w io.Writer, report *module.Report) {
	name := report.Module.Studly()
	bothRoutes := routesCreated(report)
	routesPrinted := false

	for _, s := range report.Steps {
		switch s.Status {
		case module.StatusCreated:
			switch {
			case s.Kind == module.StepDirectories:
				_, _ = fmt.Fprintf(w, "%s Created Folders for Module: %s\n", symSuccess(), name)
			case s.Artifact.IsRoutes() && bothRoutes:
				if !routesPrinted {
					routesPrinted = true
					_, _ = fmt.Fprintf(w, "%s Created Route Files for Module: %s\n", symSuccess(), name)
				}
			case s.Artifact.IsRoutes():
				_, _ = fmt.Fprintf(w, "%s Created %s for Module: %s\n", symSuccess(), s.Artifact.Label(), name)
			case s.Artifact == models.ArtifactHelper:
				_, _ = fmt.Fprintf(w, "%s Created Helper File for Module: %s\n", symSuccess(), name)
			default:
				_, _ = fmt.Fprintf(w, "%s Created %s: %s\n", symSuccess(), s.Artifact.Label(), s.Name)
			}
		case module.StatusAlreadyExists:
			_, _ = fmt.Fprintf(w, "%s %s already exists!\n", symWarning(), stepLabel(s))
		case module.StatusWriteFailed:
			_, _ = fmt.Fprintf(w, "%s Failed to create %s: %v\n", symError(), stepLabel(s), s.Err)
		}
	}

	if report.RolledBack {
		_, _ = fmt.Fprintf(w, "%s Generation rolled back: %s removed\n", symError(), report.ModuleDir)
	}
}

// routesCreated reports whether both route files were written.
func routesCreated(report *module.Report) bool {
	web, okWeb := report.File(models.ArtifactWebRoutes)
	api, okAPI := report.File(models.ArtifactAPIRoutes)
	return okWeb && okAPI && web.Status == module.StatusCreated && api.Status == module.StatusCreated
}

func stepLabel(s module.Step) string {
	if s.Kind == module.StepDirectories {
		return "Module folders"
	}
	return s.Artifact.Label()
}

// printSummary writes the result card and the next steps.
func printSummary(w io.Writer, report *module.Report, root string) {
	details := []string{cliMuted.Render("Location: ") + filepath.Join(root, report.ModuleDir)}
	for _, f := range report.Files() {
		details = append(details, "  "+filepath.ToSlash(f))
	}
	if n := len(report.Conflicts()); n > 0 {
		details = append(details, cliWarn.Render(fmt.Sprintf("%d file(s) skipped because they already exist", n)))
	}
	_, _ = fmt.Fprintln(w, successCard("Module "+report.Module.Studly()+" created", details...))

	md, err := deps.Console.RenderMarkdown(nextSteps(report))
	if err != nil {
		deps.Logger.Warn("render next steps failed", "error", err)
		return
	}
	_, _ = fmt.Fprint(w, md)
}

// nextSteps describes how to mount the generated module.
func nextSteps(report *module.Report) string {
	prefix := report.Module.Prefix()
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "- Mount `RegisterWebRoutes` to serve `%s` and `RegisterAPIRoutes` to serve `/api%s`.\n", prefix, prefix)
	b.WriteString("- Run `modular module:list` to see what the loader registers at boot.\n")
	return b.String()
}
