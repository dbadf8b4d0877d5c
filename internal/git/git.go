// Package git reads tags and history from a repository for changelog
// generation. It uses go-git so no git binary is required.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/semtag"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the repository containing path, walking up to find .git.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository reports whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := openRepo(path)
	return err == nil
}

// SemverTags returns the semantic-version tags on commits reachable from
// HEAD, newest first. Tags on unmerged branches are not listed.
func SemverTags(path string) ([]string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	targets, err := tagTargets(repo)
	if err != nil {
		return nil, err
	}

	var names []string
	err = walk(context.Background(), repo, head.Hash(), func(c *object.Commit) error {
		names = append(names, targets[c.Hash]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sorted := semtag.SortDesc(names)
	logDebug("[git] SemverTags: %d of %d reachable tags are semver", len(sorted), len(names))
	return sorted, nil
}

// walk visits the commits reachable from h, newest committer time first.
func walk(ctx context.Context, repo *git.Repository, h plumbing.Hash, fn func(*object.Commit) error) error {
	iter, err := repo.Log(&git.LogOptions{From: h, Order: git.LogOrderCommitterTime})
	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(c)
	})
	if err != nil {
		return fmt.Errorf("walking log: %w", err)
	}
	return nil
}

// ancestors returns h and every commit reachable from it.
func ancestors(ctx context.Context, repo *git.Repository, h plumbing.Hash) (map[plumbing.Hash]bool, error) {
	seen := make(map[plumbing.Hash]bool)
	err := walk(ctx, repo, h, func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	return seen, err
}

// tagTargets maps commit hashes to the names of the tags pointing at them.
// Annotated tags are peeled to their commit.
func tagTargets(repo *git.Repository) (map[plumbing.Hash][]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	targets := make(map[plumbing.Hash][]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		tag, err := repo.TagObject(ref.Hash())
		switch {
		case err == nil:
			c, err := tag.Commit()
			if err != nil {
				logDebug("[git] skipping tag %s: %v", ref.Name().Short(), err)
				return nil
			}
			target = c.Hash
		case !errors.Is(err, plumbing.ErrObjectNotFound):
			return fmt.Errorf("reading tag %s: %w", ref.Name().Short(), err)
		}
		targets[target] = append(targets[target], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return targets, nil
}

// decoration renders tag names like git's %d placeholder restricted to tags,
// e.g. " (tag: v1.2.0, tag: stable)".
func decoration(names []string) string {
	if len(names) == 0 {
		return ""
	}
	ordered := append([]string(nil), names...)
	sort.SliceStable(ordered, func(i, j int) bool {
		vi, vj := semtag.Valid(ordered[i]), semtag.Valid(ordered[j])
		if vi != vj {
			return vi
		}
		return ordered[i] < ordered[j]
	})

	parts := make([]string, len(ordered))
	for i, n := range ordered {
		parts[i] = "tag: " + n
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// LogOptions selects the commits returned by Log.
type LogOptions struct {
	// Path is any directory inside the repository.
	Path string
	// From is a revision whose commit and ancestors are excluded, like
	// "git log From..HEAD". Empty means the whole history.
	From string
}

// Log returns commits reachable from HEAD, newest first, with their tag
// decorations.
func Log(ctx context.Context, opts LogOptions) ([]commit.Raw, error) {
	repo, err := openRepo(opts.Path)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	var excluded map[plumbing.Hash]bool
	if opts.From != "" {
		h, err := repo.ResolveRevision(plumbing.Revision(opts.From))
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", opts.From, err)
		}
		if excluded, err = ancestors(ctx, repo, *h); err != nil {
			return nil, err
		}
	}

	targets, err := tagTargets(repo)
	if err != nil {
		return nil, err
	}

	var raws []commit.Raw
	err = walk(ctx, repo, head.Hash(), func(c *object.Commit) error {
		if excluded[c.Hash] {
			return nil
		}
		raws = append(raws, commit.Raw{
			Hash:          c.Hash.String(),
			Message:       c.Message,
			GitTags:       decoration(targets[c.Hash]),
			CommitterDate: c.Committer.When,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logDebug("[git] Log: %d commits, %d excluded by %q", len(raws), len(excluded), opts.From)
	return raws, nil
}
