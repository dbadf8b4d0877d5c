package templates

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// LoadError reports a template that could not be read.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("loading template %s from %s: %v", e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("loading template %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Sources holds the raw text of the four templates.
type Sources struct {
	Main   string
	Header string
	Commit string
	Footer string
}

// Load reads the four templates concurrently. A file present in dir replaces
// the embedded default of the same name; dir may be empty.
func Load(ctx context.Context, dir string) (*Sources, error) {
	names := Files()
	contents := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := read(dir, name)
			if err != nil {
				return err
			}
			contents[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Sources{
		Main:   contents[0],
		Header: contents[1],
		Commit: contents[2],
		Footer: contents[3],
	}, nil
}

func read(dir, name string) ([]byte, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Name: name, Path: path, Err: err}
		}
	}

	data, err := Embedded(name)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return data, nil
}
