package writer

import (
	"regexp"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
)

// BreakingChangeTitle is the heading every note is filed under.
const BreakingChangeTitle = "BREAKING CHANGES"

var (
	issuePattern   = regexp.MustCompile(`#([0-9]+)`)
	mentionPattern = regexp.MustCompile(`\B@([a-zA-Z0-9](?:-?[a-zA-Z0-9]){0,38})`)
)

// Labels shown regardless of notes.
var primaryLabels = map[string]string{
	"feat":   "Features",
	"fix":    "Bug Fixes",
	"perf":   "Performance Improvements",
	"revert": "Reverts",
}

var secondaryLabels = map[string]string{
	"docs":     "Documentation",
	"style":    "Styles",
	"refactor": "Code Refactoring",
	"test":     "Tests",
	"build":    "Build System",
	"ci":       "Continuous Integration",
}

// label maps a raw type to its display category. keep is false when the
// commit should be dropped.
func (o *Options) label(typ string, hasNotes bool) (string, bool) {
	if l, ok := primaryLabels[typ]; ok {
		return l, true
	}
	if o.Variant == VariantRefined {
		if typ == "chore" {
			return "Chores", true
		}
		if l, ok := secondaryLabels[typ]; ok {
			return l, true
		}
		return typ, hasNotes
	}
	if !hasNotes {
		return "", false
	}
	if l, ok := secondaryLabels[typ]; ok {
		return l, true
	}
	return typ, true
}

// Transform returns a display-ready copy of c, or ok=false when the commit is
// discarded. A commit with notes is never discarded.
func (o *Options) Transform(c commit.Commit, ctx *Context) (commit.Commit, bool) {
	out := c.Clone()

	for i := range out.Notes {
		out.Notes[i].Title = BreakingChangeTitle
	}

	typ, keep := o.label(out.Type, len(out.Notes) > 0)
	if !keep {
		return commit.Commit{}, false
	}
	out.Type = typ

	if out.Scope == "*" {
		out.Scope = ""
	}

	if len(out.Hash) > 7 {
		out.Hash = out.Hash[:7]
	}

	linked := map[string]bool{}
	if base := ctx.RepoBaseURL(); base != "" {
		issues := base + "/issues/"
		out.Subject = issuePattern.ReplaceAllStringFunc(out.Subject, func(m string) string {
			issue := m[1:]
			linked[issue] = true
			return "[#" + issue + "](" + issues + issue + ")"
		})
	}
	if ctx.Host != "" {
		out.Subject = mentionPattern.ReplaceAllStringFunc(out.Subject, func(m string) string {
			user := m[1:]
			return "[@" + user + "](" + ctx.Host + "/" + user + ")"
		})
	}

	if len(linked) > 0 {
		refs := make([]commit.Reference, 0, len(out.References))
		for _, r := range out.References {
			if !linked[r.Issue] {
				refs = append(refs, r)
			}
		}
		out.References = refs
	}

	return out, true
}
