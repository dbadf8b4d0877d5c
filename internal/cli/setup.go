package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chglog-uae/internal/config"
	"github.com/ariel-frischer/chglog-uae/internal/errors"
	"github.com/ariel-frischer/chglog-uae/internal/git"
	"github.com/ariel-frischer/chglog-uae/internal/logger"
)

// session is the state shared by every command after flags are parsed.
type session struct {
	cfg  *config.Configuration
	log  logger.Logger
	repo string
}

// newSession loads configuration, builds the logger and checks that the
// target directory is a repository.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: configFlag,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, errors.ConfigInvalid(err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})

	gitLog := logger.Named(log, "git")
	git.SetDebugLogger(func(format string, args ...any) {
		gitLog.Debug().Msgf(format, args...)
	})

	repo := repoFlag
	if !git.IsRepository(repo) {
		path := repo
		if path == "" {
			path = "."
		}
		return nil, errors.NotARepository(path)
	}

	return &session{cfg: cfg, log: log, repo: repo}, nil
}

// repository returns link settings from config, filling owner and
// repository from the origin remote when they are not configured.
func (s *session) repository() (host, owner, repository, repoURL string) {
	host, owner, repository, repoURL = s.cfg.Host, s.cfg.Owner, s.cfg.Repository, s.cfg.RepoURL
	if owner != "" || repoURL != "" {
		return host, owner, repository, repoURL
	}

	remote, err := git.OriginRemote(s.repo)
	if err != nil {
		s.log.Debug().Err(err).Msg("no origin remote, links disabled")
		return host, owner, repository, repoURL
	}
	return remote.Host, remote.Owner, remote.Repository, repoURL
}
