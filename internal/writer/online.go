package writer

import (
	"regexp"
	"strings"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
)

// The leading .* binds the version to the "Version:" nearest to "Date:", so a
// subject like "Online Operation Version: feat: Version: 1.2.0 ..." yields 1.2.0.
var recordPattern = regexp.MustCompile(`^.*Version:\s*(.*?)\s*Date:\s*(.*?)\s*Operator:\s*(.*?)\s*$`)

// ParseRecord extracts the release record from a subject. ok is false when
// the subject does not carry all three fields.
func ParseRecord(subject string) (OnlineInfo, bool) {
	m := recordPattern.FindStringSubmatch(subject)
	if m == nil || m[1] == "" || m[2] == "" || m[3] == "" {
		return OnlineInfo{}, false
	}
	return OnlineInfo{Version: m[1], Date: m[2], Operator: m[3]}, true
}

// FinalizeOnline moves the first release record commit found in a record
// group out of CommitGroups and into OnlineInfo or OnlineInfoHistory.
func FinalizeOnline(ctx *Context, opts *Options, _ FinalizeInput) *Context {
	titles := opts.recordGroups()

	for gi, g := range ctx.CommitGroups {
		if !titles[g.Title] {
			continue
		}

		idx, info := findRecord(g.Commits, opts)
		if idx < 0 {
			continue
		}

		remaining := make([]commit.Commit, 0, len(g.Commits)-1)
		remaining = append(remaining, g.Commits[:idx]...)
		remaining = append(remaining, g.Commits[idx+1:]...)

		groups := make([]CommitGroup, len(ctx.CommitGroups))
		copy(groups, ctx.CommitGroups)
		groups[gi] = CommitGroup{Title: g.Title, Commits: remaining}
		if len(remaining) == 0 && opts.Variant == VariantRefined {
			groups[gi].Title = ""
		}
		ctx.CommitGroups = groups

		route(ctx, opts, info)
		return ctx
	}

	return ctx
}

func findRecord(commits []commit.Commit, opts *Options) (int, OnlineInfo) {
	for i, c := range commits {
		if !strings.Contains(c.Subject, ReleaseMarker) {
			continue
		}
		info, ok := ParseRecord(c.Subject)
		if !ok {
			opts.Logger.Warn().
				Str("hash", c.Hash).
				Str("subject", c.Subject).
				Msg("skipping malformed release record")
			continue
		}
		return i, info
	}
	return -1, OnlineInfo{}
}

func route(ctx *Context, opts *Options, info OnlineInfo) {
	var historical bool
	switch opts.Routing {
	case RouteByVersion:
		historical = ctx.Version != ""
	default:
		historical = opts.ReleaseCount == 0
	}

	if historical {
		ctx.OnlineInfoHistory = &info
	} else {
		ctx.OnlineInfo = &info
	}
}
