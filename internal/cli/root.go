// Package cli implements the chglog-uae command line.
package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chglog-uae/internal/errors"
	"github.com/ariel-frischer/chglog-uae/internal/version"
)

var (
	configFlag   string
	logLevelFlag string
	repoFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "chglog-uae",
	Short: "Generate conventional changelogs with online release markers",
	Long: `chglog-uae renders a markdown changelog from conventional commits.

Commits are grouped by type, breaking changes are collected into their own
section, and a release record commit such as

  chore: Online Operation Version: 1.2.0 Date: 2024-01-01 Operator: alice

is lifted out of the commit list and shown as the release's online
deployment line.`,
	Example: `  chglog-uae generate                       # newest release to stdout
  chglog-uae generate --same-file           # prepend to CHANGELOG.md
  chglog-uae generate --release-count 0 -s  # regenerate the whole file
  chglog-uae bump --output json             # recommended version bump
  chglog-uae tags                           # semver tags, newest first
  chglog-uae init                           # write .chglog-uae.yml with defaults`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Project config file (default .chglog-uae.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "C", "", "Path inside the git repository (default current directory)")
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		var exitErr *ExitError
		if !stderrors.As(err, &exitErr) {
			errors.FprintError(rootCmd.ErrOrStderr(), err)
		}
	}
	return err
}
