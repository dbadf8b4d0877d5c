package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Remote is a hosted repository location derived from a remote URL.
type Remote struct {
	Host       string
	Owner      string
	Repository string
}

// ErrNoRemote is returned when the repository has no usable origin remote.
var ErrNoRemote = errors.New("no origin remote")

// OriginRemote reads the origin remote of the repository containing path.
func OriginRemote(path string) (Remote, error) {
	repo, err := openRepo(path)
	if err != nil {
		return Remote{}, err
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return Remote{}, ErrNoRemote
		}
		return Remote{}, fmt.Errorf("reading origin remote: %w", err)
	}

	for _, u := range remote.Config().URLs {
		if r, ok := ParseRemoteURL(u); ok {
			logDebug("[git] origin remote %s -> %s/%s/%s", u, r.Host, r.Owner, r.Repository)
			return r, nil
		}
	}
	return Remote{}, ErrNoRemote
}

// ParseRemoteURL understands https, ssh:// and SCP-style (git@host:owner/repo)
// URLs. The host is returned as an https base URL.
func ParseRemoteURL(raw string) (Remote, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Remote{}, false
	}

	var host, path string
	switch {
	case strings.Contains(s, "://"):
		u, err := url.Parse(strings.TrimPrefix(s, "git+"))
		if err != nil || u.Host == "" {
			return Remote{}, false
		}
		host, path = u.Hostname(), u.Path
	case strings.Contains(s, "@") && strings.Contains(s, ":"):
		at := strings.Index(s, "@")
		colon := strings.Index(s[at:], ":") + at
		host, path = s[at+1:colon], s[colon+1:]
	default:
		return Remote{}, false
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if host == "" || len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return Remote{}, false
	}

	return Remote{
		Host:       "https://" + host,
		Owner:      strings.Join(parts[:len(parts)-1], "/"),
		Repository: parts[len(parts)-1],
	}, true
}
