package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chglog-uae/internal/config"
	"github.com/ariel-frischer/chglog-uae/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config with the defaults",
	Long: `Write .chglog-uae.yml (or the file named by --config) with every setting
at its default value and a comment describing it.

An existing file is left unchanged unless --force is given.`,
	Example: `  chglog-uae init
  chglog-uae init --force
  chglog-uae init -c release/.chglog-uae.yml`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config with defaults")
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		path = config.ProjectConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(cmd.ErrOrStderr(), "Config %s already exists.\n", path)
		fmt.Fprintln(cmd.ErrOrStderr(), "Use --force to overwrite it with the defaults.")
		return NewExitError(ExitInvalidArguments)
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.OutputWriteFailed(path, err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Created"), path)
	return nil
}
