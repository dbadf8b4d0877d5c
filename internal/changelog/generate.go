package changelog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/semtag"
	"github.com/ariel-frischer/chglog-uae/internal/templates"
	"github.com/ariel-frischer/chglog-uae/internal/writer"
)

// Repository identifies where links in the changelog point to.
type Repository struct {
	Host       string
	Owner      string
	Repository string
	RepoURL    string
}

// Generator turns parsed commits into rendered release sections.
type Generator struct {
	Options  *writer.Options
	Renderer *templates.Renderer
	Repo     Repository
	// ReleaseVersion labels commits newer than the newest release; may be empty.
	ReleaseVersion string
	// Now returns the date used for unreleased work.
	Now func() time.Time
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// Contexts builds a finalized context for each of the newest
// Options.ReleaseCount releases.
func (g *Generator) Contexts(commits []commit.Commit) []*writer.Context {
	releases := Limit(SplitReleases(commits, g.Options, g.ReleaseVersion), g.Options.ReleaseCount)

	contexts := make([]*writer.Context, 0, len(releases))
	for _, r := range releases {
		contexts = append(contexts, g.context(r))
	}
	return contexts
}

func (g *Generator) context(r Release) *writer.Context {
	ctx := &writer.Context{
		Version:    r.Version,
		IsPatch:    semtag.IsPatch(r.Version),
		Host:       g.Repo.Host,
		Owner:      g.Repo.Owner,
		Repository: g.Repo.Repository,
		RepoURL:    g.Repo.RepoURL,
	}
	if r.KeyCommit != nil && !r.KeyCommit.CommitterDate.IsZero() {
		ctx.Date = r.KeyCommit.CommitterDate.Format("2006-01-02")
	} else {
		ctx.Date = g.now().Format("2006-01-02")
	}

	filtered := make([]commit.Commit, 0, len(r.Commits))
	for _, c := range r.Commits {
		if out, ok := g.Options.Transform(c, ctx); ok {
			filtered = append(filtered, out)
		}
	}

	ctx.CommitGroups = g.Options.GroupCommits(filtered)
	ctx.NoteGroups = g.Options.GroupNotes(filtered)

	ctx = g.Options.Finalize.Run(ctx, g.Options, writer.FinalizeInput{
		Filtered:  filtered,
		KeyCommit: r.KeyCommit,
		Original:  r.Commits,
	})

	g.Options.Logger.Debug().
		Str("version", ctx.Version).
		Str("previous_tag", ctx.PreviousTag).
		Str("current_tag", ctx.CurrentTag).
		Int("commits", len(filtered)).
		Bool("online_info", ctx.Release() != nil).
		Msg("finalized release")

	return ctx
}

// Generate renders every release section to w, newest first.
func (g *Generator) Generate(w io.Writer, commits []commit.Commit) error {
	for i, ctx := range g.Contexts(commits) {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := g.Renderer.Render(w, ctx); err != nil {
			return err
		}
	}
	return nil
}

// GenerateString is a convenience wrapper around Generate.
func (g *Generator) GenerateString(commits []commit.Commit) (string, error) {
	var b strings.Builder
	if err := g.Generate(&b, commits); err != nil {
		return "", fmt.Errorf("generating changelog: %w", err)
	}
	return b.String(), nil
}
