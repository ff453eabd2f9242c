package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modular/internal/core/loader"
)

var moduleListCmd = &cobra.Command{
	Use:   "module:list",
	Short: "Show the active modules and what the loader registers for each",
	Long: `Boot the module loader against an in-process registry and print, for every
active module, the route and helper files and the view, translation and
migration directories that would be registered with the host application.`,
	Args: cobra.NoArgs,
	RunE: runModuleList,
}

func init() {
	rootCmd.AddCommand(moduleListCmd)

	moduleListCmd.Flags().Bool("routes-cached", false, "Boot as a host with a route cache (route files are skipped)")
}

func runModuleList(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()

	reg := loader.NewRegistry(getBoolFlag(cmd, "routes-cached"))
	spin := deps.Console.Spinner("Booting modules")
	report, err := deps.NewLoader(reg).Boot(cmd.Context())
	spin.Stop()
	if report == nil {
		return err
	}

	cfg := deps.Config.Get()
	if len(report.Modules) == 0 {
		_, _ = fmt.Fprintf(out, "%s No modules found under %s\n", symWarning(), cfg.Modules.Path)
		return err
	}

	for _, m := range report.Modules {
		_, _ = fmt.Fprintln(out, card(m.Name, describeModule(m)))
	}

	_, _ = fmt.Fprintf(out, "%s %d module(s), %d route file(s), %d migration path(s)\n",
		symSuccess(), len(report.Modules), len(reg.Routes()), len(reg.MigrationPaths()))

	if err != nil {
		writeFailures(out, report.Failed())
		return fmt.Errorf("boot modules: %w", err)
	}
	return nil
}

// describeModule lists what was registered for one module.
func describeModule(m loader.ModuleReport) string {
	var lines []string
	add := func(label, value string) {
		if value == "" {
			value = cliMuted.Render("-")
		} else {
			value = filepath.ToSlash(value)
		}
		lines = append(lines, fmt.Sprintf("%-13s %s", label, value))
	}

	switch {
	case m.RoutesCached:
		add("Routes", cliMuted.Render("cached"))
	case len(m.Routes) == 0:
		add("Routes", "")
	default:
		for i, r := range m.Routes {
			label := ""
			if i == 0 {
				label = "Routes"
			}
			add(label, r)
		}
	}
	add("Helper", m.Helper)
	add("Views", m.Views)
	add("Translations", m.Translations)
	add("Migrations", m.Migrations)

	if m.Err != nil {
		lines = append(lines, cliError.Render("Error: "+m.Err.Error()))
	}
	return strings.Join(lines, "\n")
}

func writeFailures(w io.Writer, failed []loader.ModuleReport) {
	for _, m := range failed {
		_, _ = fmt.Fprintf(w, "%s %s: %v\n", symError(), m.Name, m.Err)
	}
}
