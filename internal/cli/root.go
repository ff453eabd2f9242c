package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modular/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "modular",
	Short: "Scaffold and boot self-contained application modules",
	Long: `modular generates module skeletons (directories, route files, helper and
optional controller, model, repository, interface and migration files) and
discovers existing modules so their routes, views, translations and
migrations can be registered with the host application.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd == initCmd {
			return nil
		}
		return InitDependencies(cmd)
	},
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the modular CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/modular/main.go and the cli tests
// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("modular %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Configuration file (default: modular.yaml in the project root, or $MODULAR_CONFIG)")
	pf.String("root", "", "Project root directory (default: current directory)")
	pf.BoolP("verbose", "v", false, "Write debug logs to stderr")
	pf.BoolP("no-interaction", "n", false, "Never prompt; fail when required input is missing")
}
