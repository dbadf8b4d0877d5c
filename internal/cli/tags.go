package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chglog-uae/internal/errors"
	"github.com/ariel-frischer/chglog-uae/internal/git"
	"github.com/ariel-frischer/chglog-uae/internal/version"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List semver tags, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		tags, err := git.SemverTags(s.repo)
		if err != nil {
			return errors.HistoryReadFailed(err)
		}
		for _, t := range tags {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(versionCmd)
}
