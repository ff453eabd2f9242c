package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modular/internal/config"
	"github.com/modu-ai/modular/internal/core/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a modular.yaml with default settings",
	Long: `Write a modular.yaml configuration file to the project root.

Examples:
  modular init
  modular init --modules-path src/Modules --namespace github.com/acme/shop
  modular init --force     Overwrite an existing configuration file`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("modules-path", "", "Modules root relative to the project root (default: app/Modules)")
	initCmd.Flags().String("namespace", "", "Root import path of generated packages (default: derived from go.mod, else example.com/app)")
	initCmd.Flags().String("extension", "", "Extension of generated files (default: .go)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	root, err := resolveRoot(getStringFlag(cmd, "root"))
	if err != nil {
		return err
	}
	path := config.ResolvePath(root, getStringFlag(cmd, "config"))

	if _, err := os.Stat(path); err == nil && !getBoolFlag(cmd, "force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check config file: %w", err)
	}

	cfg := config.NewDefaultConfig()
	if v := getStringFlag(cmd, "modules-path"); v != "" {
		cfg.Modules.Path = v
	}
	if v := getStringFlag(cmd, "namespace"); v != "" {
		cfg.Generator.Namespace = v
	} else if ns, err := project.DetectNamespace(root, cfg.Modules.Path); err == nil {
		cfg.Generator.Namespace = ns
	}
	if v := getStringFlag(cmd, "extension"); v != "" {
		cfg.Generator.Extension = v
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, successCard("Configuration written",
		cliMuted.Render("File: ")+path,
		cliMuted.Render("Modules: ")+cfg.Modules.Path,
		cliMuted.Render("Namespace: ")+cfg.Generator.Namespace,
	))
	return nil
}
