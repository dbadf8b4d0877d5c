package writer

import "github.com/ariel-frischer/chglog-uae/internal/commit"

// UnreleasedVersion is the version label of the batch above the newest tag.
const UnreleasedVersion = "Unreleased"

// OnlineInfo is a release record embedded in a commit subject.
type OnlineInfo struct {
	Version  string `yaml:"version" json:"version"`
	Date     string `yaml:"date" json:"date"`
	Operator string `yaml:"operator" json:"operator"`
}

// CommitGroup is a set of commits under one display category. A group emptied
// by record extraction keeps its slot with an empty title.
type CommitGroup struct {
	Title   string          `yaml:"title" json:"title"`
	Commits []commit.Commit `yaml:"commits" json:"commits"`
}

// NoteGroup collects notes sharing a title, e.g. "BREAKING CHANGES".
type NoteGroup struct {
	Title string        `yaml:"title" json:"title"`
	Notes []commit.Note `yaml:"notes" json:"notes"`
}

// Context is the per-release data handed to the renderer.
type Context struct {
	Version     string `yaml:"version" json:"version"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Date        string `yaml:"date" json:"date"`
	IsPatch     bool   `yaml:"isPatch" json:"isPatch"`
	Host        string `yaml:"host,omitempty" json:"host,omitempty"`
	Owner       string `yaml:"owner,omitempty" json:"owner,omitempty"`
	Repository  string `yaml:"repository,omitempty" json:"repository,omitempty"`
	RepoURL     string `yaml:"repoUrl,omitempty" json:"repoUrl,omitempty"`
	PreviousTag string `yaml:"previousTag,omitempty" json:"previousTag,omitempty"`
	CurrentTag  string `yaml:"currentTag,omitempty" json:"currentTag,omitempty"`
	LinkCompare bool   `yaml:"linkCompare" json:"linkCompare"`

	CommitGroups []CommitGroup `yaml:"commitGroups" json:"commitGroups"`
	NoteGroups   []NoteGroup   `yaml:"noteGroups" json:"noteGroups"`

	OnlineInfo        *OnlineInfo `yaml:"onlineInfo,omitempty" json:"onlineInfo,omitempty"`
	OnlineInfoHistory *OnlineInfo `yaml:"onlineInfoHistory,omitempty" json:"onlineInfoHistory,omitempty"`
}

// RepoBaseURL returns host/owner/repository when a repository is known, else
// RepoURL. It is empty when neither is available.
func (c *Context) RepoBaseURL() string {
	if c.Repository != "" {
		return c.Host + "/" + c.Owner + "/" + c.Repository
	}
	return c.RepoURL
}

// Release returns the record routed into this context, new or historical.
func (c *Context) Release() *OnlineInfo {
	if c.OnlineInfo != nil {
		return c.OnlineInfo
	}
	return c.OnlineInfoHistory
}

// Heading is the version shown in the release header. An extracted record
// wins; the synthetic marker label and an empty version read as unreleased.
func (c *Context) Heading() string {
	if r := c.Release(); r != nil {
		return r.Version
	}
	if c.Version == "" || c.Version == OnlineMarkVersion {
		return UnreleasedVersion
	}
	return c.Version
}
