package writer

import (
	"regexp"
	"strings"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/semtag"
)

var keyCommitTag = regexp.MustCompile(`(?i)tag:\s*(.+?)[,)]`)

// FinalizeInput carries the commits of one release batch.
type FinalizeInput struct {
	// Filtered are the transformed commits kept for rendering.
	Filtered []commit.Commit
	// KeyCommit is the tagged commit that starts the batch, if any.
	KeyCommit *commit.Commit
	// Original are the parsed commits of the batch, newest first.
	Original []commit.Commit
}

// Stage enriches a release context. Stages only modify ctx.
type Stage func(ctx *Context, opts *Options, in FinalizeInput) *Context

// Pipeline runs stages in order, each seeing the previous stage's result.
type Pipeline []Stage

// Run applies every stage to ctx.
func (p Pipeline) Run(ctx *Context, opts *Options, in FinalizeInput) *Context {
	for _, stage := range p {
		ctx = stage(ctx, opts, in)
	}
	return ctx
}

// FinalizeBase resolves PreviousTag and CurrentTag and enables LinkCompare
// once both are known.
func FinalizeBase(ctx *Context, opts *Options, in FinalizeInput) *Context {
	tags := opts.SemverTags

	var oldestHash string
	if n := len(in.Original); n > 0 {
		oldestHash = in.Original[n-1].Hash
	}

	if (ctx.CurrentTag == "" || ctx.PreviousTag == "") && in.KeyCommit != nil {
		var candidate string
		if m := keyCommitTag.FindStringSubmatch(in.KeyCommit.GitTags); m != nil {
			candidate = m[1]
		}

		if idx := semtag.IndexOf(tags, candidate); candidate != "" && idx != -1 {
			ctx.CurrentTag = candidate
			if idx+1 < len(tags) {
				ctx.PreviousTag = tags[idx+1]
			} else {
				ctx.PreviousTag = oldestHash
			}
		}
	} else {
		var newest string
		if len(tags) > 0 {
			newest = tags[0]
		}
		if ctx.PreviousTag == "" {
			ctx.PreviousTag = newest
		}
		if ctx.Version != "" && ctx.Version != UnreleasedVersion && ctx.CurrentTag == "" {
			ctx.CurrentTag = GuessNextTag(newest, ctx.Version)
		}
	}

	if !ctx.LinkCompare && ctx.PreviousTag != "" && ctx.CurrentTag != "" {
		ctx.LinkCompare = true
	}
	return ctx
}

// GuessNextTag names the tag for version following the "v" prefix convention
// of previousTag. Without a previous tag the result is "v" prefixed.
func GuessNextTag(previousTag, version string) string {
	hasV := strings.HasPrefix(version, "v")
	if previousTag != "" {
		prevV := strings.HasPrefix(previousTag, "v")
		switch {
		case prevV && !hasV:
			return "v" + version
		case !prevV && hasV:
			return strings.TrimPrefix(version, "v")
		default:
			return version
		}
	}
	if !hasV {
		return "v" + version
	}
	return version
}
