package commit

import (
	"regexp"
	"strings"

	"github.com/ariel-frischer/chglog-uae/internal/semtag"
)

// ParserOptions configures how raw commit messages are split into fields.
type ParserOptions struct {
	HeaderPattern   *regexp.Regexp
	NoteKeywords    []string
	RevertPattern   *regexp.Regexp
	ReferenceAction []string
	IssuePrefix     string
}

// DefaultParserOptions returns the preset's parsing rules.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		HeaderPattern: regexp.MustCompile(`^(\w*)(?:\((.*)\))?: (.*)$`),
		NoteKeywords:  []string{"BREAKING CHANGE"},
		RevertPattern: regexp.MustCompile(`^revert:\s([\s\S]*?)\s*This reverts commit (\w*)\.`),
		ReferenceAction: []string{
			"close", "closes", "closed",
			"fix", "fixes", "fixed",
			"resolve", "resolves", "resolved",
		},
		IssuePrefix: "#",
	}
}

// Parser turns raw log entries into Commits.
type Parser struct {
	opts       ParserOptions
	references *regexp.Regexp
	notes      *regexp.Regexp
}

// NewParser compiles the reference and note matchers for opts.
func NewParser(opts ParserOptions) *Parser {
	actions := make([]string, len(opts.ReferenceAction))
	for i, a := range opts.ReferenceAction {
		actions[i] = regexp.QuoteMeta(a)
	}
	keywords := make([]string, len(opts.NoteKeywords))
	for i, k := range opts.NoteKeywords {
		keywords[i] = regexp.QuoteMeta(k)
	}

	refPattern := `(?i)(?:\b(` + strings.Join(actions, "|") + `)\s+)?` +
		`(?:([\w-]+)/([\w.-]+))?` + regexp.QuoteMeta(opts.IssuePrefix) + `(\d+)`

	return &Parser{
		opts:       opts,
		references: regexp.MustCompile(refPattern),
		notes:      regexp.MustCompile(`^(` + strings.Join(keywords, "|") + `)[:\s]\s*(.*)$`),
	}
}

// Parse splits raw into header fields, body, notes and references.
func (p *Parser) Parse(raw Raw) Commit {
	message := strings.TrimSpace(strings.ReplaceAll(raw.Message, "\r\n", "\n"))
	lines := strings.Split(message, "\n")

	c := Commit{
		Hash:          raw.Hash,
		GitTags:       raw.GitTags,
		CommitterDate: raw.CommitterDate,
		Header:        strings.TrimSpace(lines[0]),
		Notes:         []Note{},
		References:    []Reference{},
	}

	if m := p.opts.HeaderPattern.FindStringSubmatch(c.Header); m != nil {
		c.Type, c.Scope, c.Subject = m[1], m[2], m[3]
	}

	if m := p.opts.RevertPattern.FindStringSubmatch(message); m != nil {
		c.Revert = &Revert{Header: m[1], Hash: m[2]}
	}

	var body, footer []string
	var current *Note
	for _, line := range lines[1:] {
		if m := p.notes.FindStringSubmatch(line); m != nil {
			c.Notes = append(c.Notes, Note{Title: m[1], Text: m[2]})
			current = &c.Notes[len(c.Notes)-1]
			footer = append(footer, line)
			continue
		}
		if current != nil {
			current.Text = strings.TrimSpace(current.Text + "\n" + line)
			footer = append(footer, line)
			continue
		}
		body = append(body, line)
	}
	c.Body = strings.TrimSpace(strings.Join(body, "\n"))
	c.Footer = strings.TrimSpace(strings.Join(footer, "\n"))

	c.References = p.parseReferences(c.Header + "\n" + message[len(lines[0]):])
	c.Version = semtag.VersionFromDecoration(raw.GitTags)

	return c
}

func (p *Parser) parseReferences(text string) []Reference {
	refs := []Reference{}
	for _, m := range p.references.FindAllStringSubmatch(text, -1) {
		refs = append(refs, Reference{
			Action:     strings.ToLower(m[1]),
			Owner:      m[2],
			Repository: m[3],
			Issue:      m[4],
			Raw:        strings.TrimSpace(m[0]),
			Prefix:     p.opts.IssuePrefix,
		})
	}
	return refs
}

// ParseAll parses every raw entry in order.
func (p *Parser) ParseAll(raws []Raw) []Commit {
	out := make([]Commit, 0, len(raws))
	for _, r := range raws {
		out = append(out, p.Parse(r))
	}
	return out
}
