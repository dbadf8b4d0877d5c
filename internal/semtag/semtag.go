// Package semtag recognises and orders semantic-version tag names.
package semtag

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var decorationTag = regexp.MustCompile(`(?i)tag:\s*[v=]?(.+?)[,)]`)

// Valid reports whether s is a semantic version, optionally prefixed with "v" or "=".
func Valid(s string) bool {
	_, err := parse(s)
	return err == nil
}

func parse(s string) (*semver.Version, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "=")
	s = strings.TrimPrefix(s, "v")
	return semver.StrictNewVersion(s)
}

// SortDesc returns the semver-valid names from tags, newest first. Invalid
// names are dropped.
func SortDesc(tags []string) []string {
	type entry struct {
		name string
		v    *semver.Version
	}
	entries := make([]entry, 0, len(tags))
	for _, t := range tags {
		v, err := parse(t)
		if err != nil {
			continue
		}
		entries = append(entries, entry{name: t, v: v})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].v.GreaterThan(entries[j].v)
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

// IsPatch reports whether version is a semantic version with a non-zero
// patch component.
func IsPatch(version string) bool {
	v, err := parse(version)
	if err != nil {
		return false
	}
	return v.Patch() != 0
}

// IndexOf returns the position of tag in tags, or -1.
func IndexOf(tags []string, tag string) int {
	for i, t := range tags {
		if t == tag {
			return i
		}
	}
	return -1
}

// VersionFromDecoration returns the first semantic version found in a git
// ref decoration such as " (HEAD -> main, tag: v1.2.0)", without its "v" prefix.
func VersionFromDecoration(gitTags string) string {
	for _, m := range decorationTag.FindAllStringSubmatch(gitTags, -1) {
		if Valid(m[1]) {
			return m[1]
		}
	}
	return ""
}
