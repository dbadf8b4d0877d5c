package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ariel-frischer/chglog-uae/internal/changelog"
	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/errors"
	"github.com/ariel-frischer/chglog-uae/internal/git"
	"github.com/ariel-frischer/chglog-uae/internal/logger"
	"github.com/ariel-frischer/chglog-uae/internal/progress"
	"github.com/ariel-frischer/chglog-uae/internal/templates"
	"github.com/ariel-frischer/chglog-uae/internal/writer"
)

var (
	generateReleaseCount   int
	generateInfile         string
	generateSameFile       bool
	generateVariant        string
	generateRouting        string
	generateReleaseVersion string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the changelog for the newest releases",
	Long: `Render the changelog for the newest releases.

Commits are split into releases at every semver-tagged commit and, with the
refined variant, at every release record commit. Only the newest
--release-count releases are rendered; 0 renders the whole history.

Without --same-file the result is written to stdout. With --same-file it is
prepended to --infile, or replaces it entirely when --release-count is 0.`,
	Example: `  chglog-uae generate
  chglog-uae generate --variant simple --release-version v1.3.0
  chglog-uae generate -i CHANGELOG.md -s -r 0`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.IntVarP(&generateReleaseCount, "release-count", "r", 1, "Number of newest releases to render (0 = all)")
	f.StringVarP(&generateInfile, "infile", "i", "", "Changelog file to prepend to (default CHANGELOG.md)")
	f.BoolVarP(&generateSameFile, "same-file", "s", false, "Write the result back into the infile")
	f.StringVar(&generateVariant, "variant", "", "Preset variant: refined or simple")
	f.StringVar(&generateRouting, "routing", "", "Release record routing: release_count or version")
	f.StringVar(&generateReleaseVersion, "release-version", "", "Version label for unreleased commits")
}

// applyGenerateFlags overlays explicitly set flags on the loaded config.
func applyGenerateFlags(cmd *cobra.Command, s *session) {
	flags := cmd.Flags()
	if flags.Changed("release-count") {
		s.cfg.ReleaseCount = generateReleaseCount
	}
	if flags.Changed("infile") {
		s.cfg.Infile = generateInfile
	}
	if flags.Changed("same-file") {
		s.cfg.SameFile = generateSameFile
	}
	if flags.Changed("variant") {
		s.cfg.Variant = generateVariant
	}
	if flags.Changed("routing") {
		s.cfg.Routing = generateRouting
	}
	if flags.Changed("release-version") {
		s.cfg.ReleaseVersion = generateReleaseVersion
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, s)
	cfg := s.cfg

	if cfg.ReleaseCount < 0 {
		return errors.NegativeReleaseCount(cfg.ReleaseCount)
	}
	if cfg.SameFile && cfg.Infile == "" {
		return errors.SameFileWithoutInfile()
	}

	opts, err := writer.NewOptions(writer.Variant(cfg.Variant))
	if err != nil {
		return errors.InvalidVariant(cfg.Variant)
	}
	switch writer.Routing(cfg.Routing) {
	case "":
	case writer.RouteByReleaseCount, writer.RouteByVersion:
		opts.Routing = writer.Routing(cfg.Routing)
	default:
		return errors.NewArgumentErrorWithUsage(
			fmt.Sprintf("invalid routing: %q", cfg.Routing),
			"chglog-uae generate --routing release_count|version",
		)
	}
	opts.ReleaseCount = cfg.ReleaseCount
	opts.Logger = logger.Named(s.log, "writer")

	in, err := readInputs(cmd.Context(), cmd, s)
	if err != nil {
		return err
	}
	opts.SemverTags = in.tags

	renderer, err := templates.NewRenderer(in.templates)
	if err != nil {
		return errors.TemplateLoadFailed(err)
	}

	host, owner, repository, repoURL := s.repository()
	gen := &changelog.Generator{
		Options:        opts,
		Renderer:       renderer,
		Repo:           changelog.Repository{Host: host, Owner: owner, Repository: repository, RepoURL: repoURL},
		ReleaseVersion: cfg.ReleaseVersion,
	}

	section, err := gen.GenerateString(commit.NewParser(commit.DefaultParserOptions()).ParseAll(in.raws))
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	if !cfg.SameFile {
		_, err := fmt.Fprint(cmd.OutOrStdout(), section)
		return err
	}

	if err := changelog.WriteInfile(cfg.Infile, section, cfg.ReleaseCount == 0); err != nil {
		return errors.OutputWriteFailed(cfg.Infile, err)
	}
	s.log.Info().Str("infile", cfg.Infile).Int("release_count", cfg.ReleaseCount).Msg("changelog written")
	return nil
}

// inputs is everything generate reads before rendering.
type inputs struct {
	tags      []string
	raws      []commit.Raw
	templates *templates.Sources
}

// readInputs reads tags, history and templates concurrently.
func readInputs(ctx context.Context, cmd *cobra.Command, s *session) (*inputs, error) {
	sp := progress.NewSpinner(cmd.ErrOrStderr(), progress.DetectTerminalCapabilities(os.Stderr))
	sp.Start("Reading git history")

	var in inputs
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tags, err := git.SemverTags(s.repo)
		in.tags = tags
		return err
	})
	g.Go(func() error {
		raws, err := git.Log(gctx, git.LogOptions{Path: s.repo})
		in.raws = raws
		return err
	})
	g.Go(func() error {
		src, err := templates.Load(gctx, s.cfg.TemplatesDir)
		in.templates = src
		return err
	})

	if err := g.Wait(); err != nil {
		sp.Fail("")
		var loadErr *templates.LoadError
		if stderrors.As(err, &loadErr) {
			return nil, errors.TemplateLoadFailed(err)
		}
		return nil, errors.HistoryReadFailed(err)
	}

	sp.Success(fmt.Sprintf("%d commits, %d tags", len(in.raws), len(in.tags)))
	return &in, nil
}
