package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/chglog-uae/internal/bump"
	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/errors"
	"github.com/ariel-frischer/chglog-uae/internal/git"
)

var bumpOutputFlag string

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Recommend the next semantic version bump",
	Long: `Recommend the next semantic version bump from the commits made since the
newest semver tag.

Any BREAKING CHANGE note recommends a major bump, otherwise any feat commit
recommends a minor bump, otherwise a patch bump.`,
	Example: `  chglog-uae bump
  chglog-uae bump --output json`,
	Args: cobra.NoArgs,
	RunE: runBump,
}

func init() {
	rootCmd.AddCommand(bumpCmd)
	bumpCmd.Flags().StringVarP(&bumpOutputFlag, "output", "o", "text", "Output format: text, yaml or json")
}

// bumpReport is the machine-readable result of the bump command.
type bumpReport struct {
	bump.Result `yaml:",inline"`
	ReleaseType string `yaml:"release_type" json:"release_type"`
	Current     string `yaml:"current,omitempty" json:"current,omitempty"`
	Next        string `yaml:"next,omitempty" json:"next,omitempty"`
}

func runBump(cmd *cobra.Command, _ []string) error {
	switch bumpOutputFlag {
	case "text", "yaml", "json":
	default:
		return errors.InvalidOutputFormat(bumpOutputFlag)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	tags, err := git.SemverTags(s.repo)
	if err != nil {
		return errors.HistoryReadFailed(err)
	}
	var current string
	if len(tags) > 0 {
		current = tags[0]
	}

	raws, err := git.Log(cmd.Context(), git.LogOptions{Path: s.repo, From: current})
	if err != nil {
		return errors.HistoryReadFailed(err)
	}

	result := bump.WhatBump(commit.NewParser(commit.DefaultParserOptions()).ParseAll(raws))
	report := bumpReport{Result: result, ReleaseType: result.Level.Release(), Current: current}
	if current != "" {
		next, err := bump.Next(current, result.Level)
		if err != nil {
			s.log.Warn().Err(err).Str("tag", current).Msg("cannot compute next version")
		}
		report.Next = next
	}

	return writeBumpReport(cmd.OutOrStdout(), bumpOutputFlag, report)
}

func writeBumpReport(w io.Writer, format string, report bumpReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintln(w, report.ReleaseType)
		fmt.Fprintln(w, report.Reason)
		if report.Next != "" {
			fmt.Fprintf(w, "%s -> %s\n", report.Current, report.Next)
		}
		return nil
	}
}
