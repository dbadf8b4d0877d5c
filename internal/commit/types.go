// Package commit holds the parsed conventional-commit model and the parser that
// produces it from raw log entries.
package commit

import "time"

// Note is a footer annotation such as a breaking change.
type Note struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

// Reference is an issue cited by a commit, e.g. "closes #12".
type Reference struct {
	Action     string `yaml:"action,omitempty" json:"action,omitempty"`
	Owner      string `yaml:"owner,omitempty" json:"owner,omitempty"`
	Repository string `yaml:"repository,omitempty" json:"repository,omitempty"`
	Issue      string `yaml:"issue" json:"issue"`
	Raw        string `yaml:"raw" json:"raw"`
	Prefix     string `yaml:"prefix" json:"prefix"`
}

// Revert identifies the commit undone by a revert commit.
type Revert struct {
	Header string `yaml:"header" json:"header"`
	Hash   string `yaml:"hash" json:"hash"`
}

// Commit is a single parsed commit. Version and GitTags are filled from the
// tag decoration of the commit, if any.
type Commit struct {
	Type          string      `yaml:"type" json:"type"`
	Scope         string      `yaml:"scope,omitempty" json:"scope,omitempty"`
	Subject       string      `yaml:"subject" json:"subject"`
	Header        string      `yaml:"header" json:"header"`
	Body          string      `yaml:"body,omitempty" json:"body,omitempty"`
	Footer        string      `yaml:"footer,omitempty" json:"footer,omitempty"`
	Hash          string      `yaml:"hash" json:"hash"`
	Notes         []Note      `yaml:"notes" json:"notes"`
	References    []Reference `yaml:"references" json:"references"`
	Revert        *Revert     `yaml:"revert,omitempty" json:"revert,omitempty"`
	Version       string      `yaml:"version,omitempty" json:"version,omitempty"`
	GitTags       string      `yaml:"gitTags,omitempty" json:"gitTags,omitempty"`
	CommitterDate time.Time   `yaml:"committerDate" json:"committerDate"`
}

// Raw is a commit as read from the repository, before parsing.
type Raw struct {
	Hash          string
	Message       string
	GitTags       string
	CommitterDate time.Time
}

// Clone returns a copy of c whose slices can be modified independently.
func (c Commit) Clone() Commit {
	out := c
	if c.Notes != nil {
		out.Notes = append([]Note(nil), c.Notes...)
	}
	if c.References != nil {
		out.References = append([]Reference(nil), c.References...)
	}
	if c.Revert != nil {
		r := *c.Revert
		out.Revert = &r
	}
	return out
}
