package changelog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/templates"
	"github.com/ariel-frischer/chglog-uae/internal/writer"
)

const record = "feat: Online Operation Version: 1.2.0 Date: 2024-01-05 Operator: alice"

func day(d int) time.Time {
	return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
}

// history is newest first, like the output of git.Log.
func history() []commit.Commit {
	raws := []commit.Raw{
		{Hash: "5555555555", Message: "fix: handle nil #5", CommitterDate: day(9)},
		{Hash: "4444444444", Message: record, CommitterDate: day(6)},
		{Hash: "3333333333", Message: "feat(api): add search", CommitterDate: day(5)},
		{Hash: "2222222222", Message: "chore: release 1.1.0", GitTags: " (tag: v1.1.0)", CommitterDate: day(3)},
		{Hash: "1111111111", Message: "feat: initial", GitTags: " (tag: v1.0.0)", CommitterDate: day(1)},
	}
	return commit.NewParser(commit.DefaultParserOptions()).ParseAll(raws)
}

func newGenerator(t *testing.T, variant writer.Variant, releaseCount int) *Generator {
	t.Helper()
	opts, err := writer.NewOptions(variant)
	require.NoError(t, err)
	opts.ReleaseCount = releaseCount
	opts.SemverTags = []string{"v1.1.0", "v1.0.0"}

	src, err := templates.Load(context.Background(), "")
	require.NoError(t, err)
	r, err := templates.NewRenderer(src)
	require.NoError(t, err)

	return &Generator{
		Options:  opts,
		Renderer: r,
		Repo:     Repository{Host: "https://github.com", Owner: "o", Repository: "r"},
		Now:      func() time.Time { return day(10) },
	}
}

func TestSplitReleases(t *testing.T) {
	tests := map[string]struct {
		variant      writer.Variant
		wantVersions []string
		wantSizes    []int
	}{
		"refined splits on record": {
			variant:      writer.VariantRefined,
			wantVersions: []string{"", writer.OnlineMarkVersion, "1.1.0", "1.0.0"},
			wantSizes:    []int{1, 2, 1, 1},
		},
		"simple splits on tags only": {
			variant:      writer.VariantSimple,
			wantVersions: []string{"", "1.1.0", "1.0.0"},
			wantSizes:    []int{3, 1, 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts, err := writer.NewOptions(tt.variant)
			require.NoError(t, err)

			releases := SplitReleases(history(), opts, "")
			require.Len(t, releases, len(tt.wantVersions))
			for i, r := range releases {
				assert.Equal(t, tt.wantVersions[i], r.Version)
				assert.Len(t, r.Commits, tt.wantSizes[i])
				if i == 0 {
					assert.Nil(t, r.KeyCommit)
				} else {
					require.NotNil(t, r.KeyCommit)
					assert.Equal(t, r.Commits[0].Hash, r.KeyCommit.Hash)
				}
			}
		})
	}
}

func TestSplitReleases_TaggedHead(t *testing.T) {
	opts, err := writer.NewOptions(writer.VariantRefined)
	require.NoError(t, err)

	releases := SplitReleases(history()[3:], opts, "")
	require.Len(t, releases, 2)
	assert.Equal(t, "1.1.0", releases[0].Version)
}

func TestLimit(t *testing.T) {
	rs := []Release{{Version: "a"}, {Version: "b"}, {Version: "c"}}
	assert.Len(t, Limit(rs, 0), 3)
	assert.Len(t, Limit(rs, 2), 2)
	assert.Len(t, Limit(rs, 5), 3)
}

func TestGenerator_Contexts(t *testing.T) {
	g := newGenerator(t, writer.VariantRefined, 0)
	contexts := g.Contexts(history())
	require.Len(t, contexts, 4)

	unreleased := contexts[0]
	assert.Equal(t, "v1.1.0", unreleased.PreviousTag)
	assert.Empty(t, unreleased.CurrentTag)
	assert.False(t, unreleased.LinkCompare)
	assert.Equal(t, "2024-01-10", unreleased.Date)

	online := contexts[1]
	require.NotNil(t, online.OnlineInfoHistory, "full regeneration routes records to history")
	assert.Nil(t, online.OnlineInfo)
	assert.Equal(t, writer.OnlineInfo{Version: "1.2.0", Date: "2024-01-05", Operator: "alice"}, *online.OnlineInfoHistory)
	require.Len(t, online.CommitGroups, 1)
	assert.Equal(t, "Features", online.CommitGroups[0].Title)
	require.Len(t, online.CommitGroups[0].Commits, 1)
	assert.Equal(t, "add search", online.CommitGroups[0].Commits[0].Subject)
	assert.Equal(t, "2024-01-06", online.Date)

	tagged := contexts[2]
	assert.Equal(t, "v1.1.0", tagged.CurrentTag)
	assert.Equal(t, "v1.0.0", tagged.PreviousTag)
	assert.True(t, tagged.LinkCompare)
	require.Len(t, tagged.CommitGroups, 1)
	assert.Equal(t, "Chores", tagged.CommitGroups[0].Title)

	first := contexts[3]
	assert.Equal(t, "v1.0.0", first.CurrentTag)
	assert.Equal(t, "1111111111", first.PreviousTag)
}

func TestGenerator_ReleaseCountRoutesNew(t *testing.T) {
	g := newGenerator(t, writer.VariantRefined, 2)
	contexts := g.Contexts(history())
	require.Len(t, contexts, 2)
	require.NotNil(t, contexts[1].OnlineInfo)
	assert.Nil(t, contexts[1].OnlineInfoHistory)
}

func TestGenerator_GenerateString(t *testing.T) {
	g := newGenerator(t, writer.VariantRefined, 0)
	out, err := g.GenerateString(history())
	require.NoError(t, err)

	assert.Contains(t, out, "## Unreleased (2024-01-10)")
	assert.Contains(t, out, "* handle nil [#5](https://github.com/o/r/issues/5) ([5555555](https://github.com/o/r/commit/5555555))")
	assert.Contains(t, out, "## 1.2.0 (2024-01-06)")
	assert.Contains(t, out, "> Released online 1.2.0 on 2024-01-05 by alice")
	assert.Contains(t, out, "## [1.1.0](https://github.com/o/r/compare/v1.0.0...v1.1.0) (2024-01-03)")
	assert.Contains(t, out, "### Chores")
	assert.NotContains(t, out, "Online Operation Version")
	assert.NotContains(t, out, writer.OnlineMarkVersion)
}

func TestGenerator_MarkerWithoutRecordIsUnreleased(t *testing.T) {
	tests := map[string]struct {
		subject string
	}{
		"malformed record": {
			subject: "feat: Online Operation Version: 1.3.0 without details",
		},
		"record outside scanned groups": {
			subject: "fix: Online Operation Version: 1.3.0 Date: 2024-01-07 Operator: bob",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			commits := commit.NewParser(commit.DefaultParserOptions()).ParseAll([]commit.Raw{
				{Hash: "7777777777", Message: tt.subject, CommitterDate: day(7)},
				{Hash: "1111111111", Message: "feat: initial", GitTags: " (tag: v1.0.0)", CommitterDate: day(1)},
			})
			g := newGenerator(t, writer.VariantRefined, 1)

			out, err := g.GenerateString(commits)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(out, "## Unreleased (2024-01-07)\n"), "got %q", out)
			assert.NotContains(t, out, writer.OnlineMarkVersion)
			assert.Contains(t, out, "Online Operation Version: 1.3.0", "the commit stays listed")
		})
	}
}

func TestWriteInfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")

	require.NoError(t, WriteInfile(path, "## 1.0.0\n", false))
	require.NoError(t, WriteInfile(path, "## 1.1.0\n", false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## 1.1.0\n\n## 1.0.0\n", string(data))

	require.NoError(t, WriteInfile(path, "## all\n", true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## all\n", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
