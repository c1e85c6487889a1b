package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// GitHub holds repository and authentication configuration
type GitHub struct {
	Token      string `masq:"secret"`
	Repository string
	Ref        string
	CommitSHA  string
	BaseURL    string
	Workspace  string
}

// Flags returns CLI flags for GitHub configuration. The GITHUB_* sources
// match the variables a GitHub Actions runner injects.
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("HERALD_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Target repository in owner/name form",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("HERALD_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Git ref the run was triggered for (e.g. refs/heads/main)",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("HERALD_REF", "GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "commit-sha",
			Usage:       "Commit SHA to tag and release",
			Required:    true,
			Destination: &c.CommitSHA,
			Sources:     cli.EnvVars("HERALD_COMMIT_SHA", "GITHUB_SHA"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub Enterprise Server API base URL (empty for github.com)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("HERALD_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Root directory for resolving relative asset paths",
			Destination: &c.Workspace,
			Sources:     cli.EnvVars("HERALD_WORKSPACE", "GITHUB_WORKSPACE"),
		},
	}
}

// SplitRepository returns the owner and name parts of the repository
func (c *GitHub) SplitRepository() (string, string, error) {
	parts := strings.SplitN(c.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.New("repository must be in owner/name form",
			goerr.V("repository", c.Repository), goerr.T(types.ErrTagInput))
	}
	return parts[0], parts[1], nil
}
