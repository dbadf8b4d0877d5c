package commit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Header(t *testing.T) {
	tests := map[string]struct {
		message     string
		wantType    string
		wantScope   string
		wantSubject string
	}{
		"type and subject": {
			message:     "feat: add login page",
			wantType:    "feat",
			wantSubject: "add login page",
		},
		"type scope subject": {
			message:     "fix(api): handle empty body",
			wantType:    "fix",
			wantScope:   "api",
			wantSubject: "handle empty body",
		},
		"wildcard scope": {
			message:     "docs(*): refresh readme",
			wantType:    "docs",
			wantScope:   "*",
			wantSubject: "refresh readme",
		},
		"not conventional": {
			message: "Merge branch 'main' into dev",
		},
		"online release marker": {
			message:     "feat: Online Operation Version: 1.2.0 Date: 2024-01-01 Operator: alice",
			wantType:    "feat",
			wantSubject: "Online Operation Version: 1.2.0 Date: 2024-01-01 Operator: alice",
		},
	}

	p := NewParser(DefaultParserOptions())
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := p.Parse(Raw{Hash: "abc", Message: tt.message})
			assert.Equal(t, tt.wantType, c.Type)
			assert.Equal(t, tt.wantScope, c.Scope)
			assert.Equal(t, tt.wantSubject, c.Subject)
			assert.NotNil(t, c.Notes)
			assert.NotNil(t, c.References)
		})
	}
}

func TestParse_Notes(t *testing.T) {
	p := NewParser(DefaultParserOptions())
	c := p.Parse(Raw{Message: "feat(auth): drop v1 tokens\n\nTokens are now JWT.\n\nBREAKING CHANGE: v1 tokens are rejected\nre-login is required"})

	require.Len(t, c.Notes, 1)
	assert.Equal(t, "BREAKING CHANGE", c.Notes[0].Title)
	assert.Equal(t, "v1 tokens are rejected\nre-login is required", c.Notes[0].Text)
	assert.Equal(t, "Tokens are now JWT.", c.Body)
	assert.Contains(t, c.Footer, "BREAKING CHANGE")
}

func TestParse_References(t *testing.T) {
	p := NewParser(DefaultParserOptions())
	c := p.Parse(Raw{Message: "fix: crash on save #42\n\nCloses #7, see acme/tools#9"})

	require.Len(t, c.References, 3)
	assert.Equal(t, "42", c.References[0].Issue)
	assert.Empty(t, c.References[0].Action)
	assert.Equal(t, "7", c.References[1].Issue)
	assert.Equal(t, "closes", c.References[1].Action)
	assert.Equal(t, "9", c.References[2].Issue)
	assert.Equal(t, "acme", c.References[2].Owner)
	assert.Equal(t, "tools", c.References[2].Repository)
}

func TestParse_Revert(t *testing.T) {
	p := NewParser(DefaultParserOptions())
	c := p.Parse(Raw{Message: "revert: feat: add login page\n\nThis reverts commit 1234abcd."})

	require.NotNil(t, c.Revert)
	assert.Equal(t, "feat: add login page", c.Revert.Header)
	assert.Equal(t, "1234abcd", c.Revert.Hash)
	assert.Equal(t, "revert", c.Type)
}

func TestParse_VersionFromTags(t *testing.T) {
	p := NewParser(DefaultParserOptions())
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c := p.Parse(Raw{Hash: "h1", Message: "chore: release", GitTags: " (tag: v1.4.0)", CommitterDate: when})

	assert.Equal(t, "1.4.0", c.Version)
	assert.Equal(t, " (tag: v1.4.0)", c.GitTags)
	assert.Equal(t, when, c.CommitterDate)
}

func TestClone(t *testing.T) {
	orig := Commit{Notes: []Note{{Title: "a"}}, References: []Reference{{Issue: "1"}}}
	cp := orig.Clone()
	cp.Notes[0].Title = "b"
	cp.References = cp.References[:0]

	assert.Equal(t, "a", orig.Notes[0].Title)
	assert.Len(t, orig.References, 1)
}
