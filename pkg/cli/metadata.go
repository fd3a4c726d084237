package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/model"
)

// AutoDetectGitMetadata fills repo and commit fields of the intake from the
// local git repository when they were not given explicitly.
func AutoDetectGitMetadata(input *model.IntakeInput) error {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository")
	}

	if input.CommitSHA == "" {
		head, err := repo.Head()
		if err != nil {
			return goerr.Wrap(err, "failed to get HEAD")
		}
		input.CommitSHA = head.Hash().String()
	}

	if input.Repo == "" {
		remote, err := repo.Remote("origin")
		if err != nil {
			return goerr.Wrap(err, "failed to get remote origin")
		}
		if len(remote.Config().URLs) == 0 {
			return goerr.New("no remote URL found")
		}

		name, err := parseRemoteURL(remote.Config().URLs[0])
		if err != nil {
			return err
		}
		input.Repo = name
	}

	return nil
}

// parseRemoteURL extracts "owner/repo" from SSH (git@host:owner/repo.git) and
// HTTPS (https://host/owner/repo.git) remote URLs.
func parseRemoteURL(url string) (string, error) {
	var path string
	switch {
	case strings.Contains(url, "://"):
		parts := strings.SplitN(url, "://", 2)
		if idx := strings.Index(parts[1], "/"); idx >= 0 {
			path = parts[1][idx+1:]
		}
	case strings.Contains(url, ":"):
		parts := strings.SplitN(url, ":", 2)
		path = parts[1]
	}

	path = strings.TrimSuffix(path, ".git")
	if elems := strings.Split(path, "/"); len(elems) == 2 && elems[0] != "" && elems[1] != "" {
		return path, nil
	}

	return "", goerr.New("failed to parse owner/repo from git remote URL", goerr.V("url", url))
}
