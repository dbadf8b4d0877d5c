package templates

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/writer"
)

// commitEntry is the data of the commit partial.
type commitEntry struct {
	Commit  commit.Commit
	RepoURL string
}

// Renderer executes the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses src into a template set.
func NewRenderer(src *Sources) (*Renderer, error) {
	funcs := template.FuncMap{
		"entry": func(ctx *writer.Context, c commit.Commit) commitEntry {
			return commitEntry{Commit: c, RepoURL: ctx.RepoBaseURL()}
		},
	}

	root := template.New("main").Funcs(funcs)
	parts := []struct {
		tmpl *template.Template
		text string
	}{
		{root, src.Main},
		{root.New("header"), src.Header},
		{root.New("commit"), src.Commit},
		{root.New("footer"), src.Footer},
	}
	for _, p := range parts {
		if _, err := p.tmpl.Parse(p.text); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", p.tmpl.Name(), err)
		}
	}

	return &Renderer{tmpl: root}, nil
}

// Render writes one release section for ctx.
func (r *Renderer) Render(w io.Writer, ctx *writer.Context) error {
	if err := r.tmpl.ExecuteTemplate(w, "main", ctx); err != nil {
		return fmt.Errorf("rendering release %s: %w", ctx.Version, err)
	}
	return nil
}

// RenderString is a convenience wrapper around Render.
func (r *Renderer) RenderString(ctx *writer.Context) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}
