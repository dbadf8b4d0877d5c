package changelog

import (
	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/writer"
)

// Release is a batch of commits rendered as one changelog section.
type Release struct {
	// Version is the key commit's version, or the unreleased label.
	Version string
	// KeyCommit is the commit that opened the batch; nil for unreleased work.
	KeyCommit *commit.Commit
	// Commits are the parsed commits of the batch, newest first.
	Commits []commit.Commit
}

// SplitReleases walks commits newest first and starts a new release at every
// commit accepted by opts.GenerateOn. Commits above the first boundary form a
// release labelled unreleased.
func SplitReleases(commits []commit.Commit, opts *writer.Options, unreleased string) []Release {
	var releases []Release
	current := Release{Version: unreleased}

	for _, c := range commits {
		if v, ok := opts.GenerateOn(c); ok {
			if len(current.Commits) > 0 {
				releases = append(releases, current)
			}
			key := c
			current = Release{Version: v, KeyCommit: &key}
		}
		current.Commits = append(current.Commits, c)
	}
	if len(current.Commits) > 0 {
		releases = append(releases, current)
	}

	return releases
}

// Limit keeps the newest n releases; n <= 0 keeps all of them.
func Limit(releases []Release, n int) []Release {
	if n <= 0 || n >= len(releases) {
		return releases
	}
	return releases[:n]
}
