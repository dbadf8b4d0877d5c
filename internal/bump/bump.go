// Package bump recommends a semantic-version increment from a range of parsed commits.
package bump

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
)

// Level is the severity of a recommended version increment.
type Level int

const (
	// Major is recommended when any commit carries a breaking-change note.
	Major Level = iota
	// Minor is recommended when there are features but no breaking changes.
	Minor
	// Patch means no feature or breaking change was found.
	Patch
)

// Release returns the conventional release type name for the level.
func (l Level) Release() string {
	switch l {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "patch"
	}
}

// Result is the outcome of WhatBump.
type Result struct {
	Level     Level  `yaml:"level" json:"level"`
	Reason    string `yaml:"reason" json:"reason"`
	Breakings int    `yaml:"breakings" json:"breakings"`
	Features  int    `yaml:"features" json:"features"`
}

// WhatBump scans commits in order. A commit with notes forces Major no matter
// where it appears; a feat commit lifts Patch to Minor and is always counted.
func WhatBump(commits []commit.Commit) Result {
	level := Patch
	breakings := 0
	features := 0

	for _, c := range commits {
		if len(c.Notes) > 0 {
			breakings += len(c.Notes)
			level = Major
		} else if c.Type == "feat" {
			features++
			if level == Patch {
				level = Minor
			}
		}
	}

	return Result{
		Level:     level,
		Reason:    reason(breakings, features),
		Breakings: breakings,
		Features:  features,
	}
}

func reason(breakings, features int) string {
	if breakings == 1 {
		return fmt.Sprintf("There are %d BREAKING CHANGE and %d features", breakings, features)
	}
	return fmt.Sprintf("There are %d BREAKING CHANGES and %d features", breakings, features)
}

// Next applies level to current and returns the next version, keeping a
// leading "v" if current had one. An empty current starts from 0.0.0.
func Next(current string, level Level) (string, error) {
	prefix := ""
	raw := strings.TrimSpace(current)
	if strings.HasPrefix(raw, "v") {
		prefix = "v"
		raw = raw[1:]
	}
	if raw == "" {
		raw = "0.0.0"
	}

	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("parsing current version %q: %w", current, err)
	}

	var next semver.Version
	switch level {
	case Major:
		next = v.IncMajor()
	case Minor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}
	return prefix + next.String(), nil
}
