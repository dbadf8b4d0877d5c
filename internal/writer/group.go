package writer

import (
	"sort"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
)

// field reads a commit attribute by its option key.
func field(c commit.Commit, key string) string {
	switch key {
	case "type":
		return c.Type
	case "scope":
		return c.Scope
	case "subject":
		return c.Subject
	case "hash":
		return c.Hash
	case "header":
		return c.Header
	default:
		return ""
	}
}

// GroupCommits buckets commits by GroupBy, orders groups by CommitGroupsSort
// and the commits inside each group by CommitsSort.
func (o *Options) GroupCommits(commits []commit.Commit) []CommitGroup {
	index := map[string]int{}
	var groups []CommitGroup
	for _, c := range commits {
		key := field(c, o.GroupBy)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CommitGroup{Title: key})
		}
		groups[i].Commits = append(groups[i].Commits, c)
	}

	if o.CommitGroupsSort == "title" {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Title < groups[j].Title
		})
	}

	for _, g := range groups {
		sort.SliceStable(g.Commits, func(i, j int) bool {
			for _, key := range o.CommitsSort {
				a, b := field(g.Commits[i], key), field(g.Commits[j], key)
				if a != b {
					return a < b
				}
			}
			return false
		})
	}

	return groups
}

// GroupNotes collects notes by title, groups ordered by NoteGroupsSort and
// notes by text.
func (o *Options) GroupNotes(commits []commit.Commit) []NoteGroup {
	index := map[string]int{}
	var groups []NoteGroup
	for _, c := range commits {
		for _, n := range c.Notes {
			i, ok := index[n.Title]
			if !ok {
				i = len(groups)
				index[n.Title] = i
				groups = append(groups, NoteGroup{Title: n.Title})
			}
			groups[i].Notes = append(groups[i].Notes, n)
		}
	}

	if o.NoteGroupsSort == "title" {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Title < groups[j].Title
		})
	}
	for _, g := range groups {
		sort.SliceStable(g.Notes, func(i, j int) bool {
			return g.Notes[i].Text < g.Notes[j].Text
		})
	}

	return groups
}
