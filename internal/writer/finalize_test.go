package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
)

func TestGuessNextTag(t *testing.T) {
	tests := map[string]struct {
		previous string
		version  string
		want     string
	}{
		"add v to match previous":   {previous: "v1.0.0", version: "1.1.0", want: "v1.1.0"},
		"strip v to match previous": {previous: "1.0.0", version: "v1.1.0", want: "1.1.0"},
		"both prefixed":             {previous: "v1.0.0", version: "v1.1.0", want: "v1.1.0"},
		"both bare":                 {previous: "1.0.0", version: "1.1.0", want: "1.1.0"},
		"no previous bare version":  {version: "1.1.0", want: "v1.1.0"},
		"no previous with v":        {version: "v1.1.0", want: "v1.1.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessNextTag(tt.previous, tt.version))
		})
	}
}

func TestFinalizeBase(t *testing.T) {
	tags := []string{"v1.2.0", "v1.1.0", "v1.0.0"}
	original := []commit.Commit{{Hash: "newest"}, {Hash: "middle"}, {Hash: "oldest"}}

	tests := map[string]struct {
		ctx             Context
		tags            []string
		keyCommit       *commit.Commit
		wantPrevious    string
		wantCurrent     string
		wantLinkCompare bool
	}{
		"key commit tag found": {
			tags:            tags,
			keyCommit:       &commit.Commit{GitTags: " (tag: v1.1.0)"},
			wantPrevious:    "v1.0.0",
			wantCurrent:     "v1.1.0",
			wantLinkCompare: true,
		},
		"key commit is oldest tag": {
			tags:            tags,
			keyCommit:       &commit.Commit{GitTags: " (HEAD -> main, tag: v1.0.0, origin/main)"},
			wantPrevious:    "oldest",
			wantCurrent:     "v1.0.0",
			wantLinkCompare: true,
		},
		"key commit tag unknown keeps current": {
			ctx:          Context{CurrentTag: "release-x"},
			tags:         tags,
			keyCommit:    &commit.Commit{GitTags: " (tag: nightly)"},
			wantCurrent:  "release-x",
			wantPrevious: "",
		},
		"key commit without tags": {
			tags:      tags,
			keyCommit: &commit.Commit{},
		},
		"no key commit unreleased": {
			ctx:          Context{Version: UnreleasedVersion},
			tags:         tags,
			wantPrevious: "v1.2.0",
		},
		"no key commit guesses current tag": {
			ctx:             Context{Version: "1.3.0"},
			tags:            tags,
			wantPrevious:    "v1.2.0",
			wantCurrent:     "v1.3.0",
			wantLinkCompare: true,
		},
		"no key commit and no tags": {
			ctx:         Context{Version: "0.1.0"},
			wantCurrent: "v0.1.0",
		},
		"tags already known": {
			ctx:             Context{Version: "2.0.0", PreviousTag: "v1.0.0", CurrentTag: "v2.0.0"},
			tags:            tags,
			keyCommit:       &commit.Commit{GitTags: " (tag: v1.1.0)"},
			wantPrevious:    "v1.0.0",
			wantCurrent:     "v2.0.0",
			wantLinkCompare: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := mustOptions(t, VariantRefined)
			opts.SemverTags = tt.tags
			ctx := tt.ctx

			got := FinalizeBase(&ctx, opts, FinalizeInput{KeyCommit: tt.keyCommit, Original: original})
			require.Same(t, &ctx, got)
			assert.Equal(t, tt.wantPrevious, got.PreviousTag)
			assert.Equal(t, tt.wantCurrent, got.CurrentTag)
			assert.Equal(t, tt.wantLinkCompare, got.LinkCompare)
		})
	}
}

func TestPipeline_RunsInOrder(t *testing.T) {
	var order []string
	stage := func(name string) Stage {
		return func(ctx *Context, _ *Options, _ FinalizeInput) *Context {
			order = append(order, name)
			ctx.Title += name
			return ctx
		}
	}

	opts := mustOptions(t, VariantRefined)
	ctx := Pipeline{stage("a"), stage("b"), stage("c")}.Run(&Context{}, opts, FinalizeInput{})
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, "abc", ctx.Title)
}

func TestDefaultPipeline_BaseBeforeOnline(t *testing.T) {
	opts := mustOptions(t, VariantSimple)
	opts.SemverTags = []string{"v1.0.0"}
	ctx := &Context{
		CommitGroups: []CommitGroup{{
			Title:   "Features",
			Commits: []commit.Commit{{Subject: "Online Operation Version: 1.1.0 Date: 2024-02-02 Operator: bob"}},
		}},
	}

	got := opts.Finalize.Run(ctx, opts, FinalizeInput{})
	assert.Equal(t, "v1.0.0", got.PreviousTag)
	require.NotNil(t, got.OnlineInfo)
	assert.Equal(t, "1.1.0", got.OnlineInfo.Version)
	assert.Empty(t, got.CommitGroups[0].Commits)
	assert.Equal(t, "Features", got.CommitGroups[0].Title)
}

func TestContext_Heading(t *testing.T) {
	tests := map[string]struct {
		ctx  Context
		want string
	}{
		"tagged version": {
			ctx:  Context{Version: "1.1.0"},
			want: "1.1.0",
		},
		"empty version": {
			ctx:  Context{},
			want: UnreleasedVersion,
		},
		"marker boundary without record": {
			ctx:  Context{Version: OnlineMarkVersion},
			want: UnreleasedVersion,
		},
		"new record wins": {
			ctx:  Context{Version: OnlineMarkVersion, OnlineInfo: &OnlineInfo{Version: "1.3.0"}},
			want: "1.3.0",
		},
		"historical record wins": {
			ctx:  Context{Version: "1.0.0", OnlineInfoHistory: &OnlineInfo{Version: "1.0.1"}},
			want: "1.0.1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ctx.Heading())
		})
	}
}
