package github

import (
	"context"
	"os"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/types"
	"golang.org/x/oauth2"
)

type client struct {
	githubClient *github.Client
}

const listPageSize = 100

// NewClient creates a GitHub client authenticated with a personal access or
// workflow token. baseURL switches the client to a GitHub Enterprise Server
// endpoint; leave it empty for github.com.
func NewClient(ctx context.Context, token, baseURL string) (interfaces.RepositoryClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is required", goerr.T(types.ErrTagInput))
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	githubClient := github.NewClient(oauth2.NewClient(ctx, ts))

	if baseURL != "" {
		var err error
		githubClient, err = githubClient.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL",
				goerr.V("base_url", baseURL), goerr.T(types.ErrTagInput))
		}
	}

	return &client{githubClient: githubClient}, nil
}

// ListTags lists every tag of the repository, following pagination
func (c *client) ListTags(ctx context.Context, owner, repo string) ([]*github.RepositoryTag, error) {
	var tags []*github.RepositoryTag
	opts := &github.ListOptions{PerPage: listPageSize}

	for {
		page, resp, err := c.githubClient.Repositories.ListTags(ctx, owner, repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list tags",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.T(types.ErrTagRemoteCall))
		}
		tags = append(tags, page...)
		if resp.NextPage == 0 {
			return tags, nil
		}
		opts.Page = resp.NextPage
	}
}

// CreateTagObject creates an annotated tag object bound to a commit
func (c *client) CreateTagObject(ctx context.Context, owner, repo string, tag *github.Tag) (*github.Tag, error) {
	created, _, err := c.githubClient.Git.CreateTag(ctx, owner, repo, tag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create tag object",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("tag", tag.GetTag()), goerr.T(types.ErrTagRemoteCall))
	}
	return created, nil
}

// CreateRef creates a git reference pointing at the given object
func (c *client) CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, error) {
	created, _, err := c.githubClient.Git.CreateRef(ctx, owner, repo, ref)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create ref",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("ref", ref.GetRef()), goerr.T(types.ErrTagRemoteCall))
	}
	return created, nil
}

// UpdateRef moves an existing git reference to a new target
func (c *client) UpdateRef(ctx context.Context, owner, repo string, ref *github.Reference, force bool) (*github.Reference, error) {
	updated, _, err := c.githubClient.Git.UpdateRef(ctx, owner, repo, ref, force)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update ref",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("ref", ref.GetRef()), goerr.T(types.ErrTagRemoteCall))
	}
	return updated, nil
}

// GetCommit fetches a raw git commit by SHA
func (c *client) GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, error) {
	commit, _, err := c.githubClient.Git.GetCommit(ctx, owner, repo, sha)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("sha", sha), goerr.T(types.ErrTagRemoteCall))
	}
	return commit, nil
}

// ListReleases lists every release of the repository, following pagination
func (c *client) ListReleases(ctx context.Context, owner, repo string) ([]*github.RepositoryRelease, error) {
	var releases []*github.RepositoryRelease
	opts := &github.ListOptions{PerPage: listPageSize}

	for {
		page, resp, err := c.githubClient.Repositories.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list releases",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.T(types.ErrTagRemoteCall))
		}
		releases = append(releases, page...)
		if resp.NextPage == 0 {
			return releases, nil
		}
		opts.Page = resp.NextPage
	}
}

// CreateRelease creates a new release
func (c *client) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	created, _, err := c.githubClient.Repositories.CreateRelease(ctx, owner, repo, release)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("name", release.GetName()), goerr.T(types.ErrTagRemoteCall))
	}
	return created, nil
}

// EditRelease updates an existing release by id
func (c *client) EditRelease(ctx context.Context, owner, repo string, id int64, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	updated, _, err := c.githubClient.Repositories.EditRelease(ctx, owner, repo, id, release)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to edit release",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("release_id", id), goerr.T(types.ErrTagRemoteCall))
	}
	return updated, nil
}

// ListReleaseAssets lists every asset attached to a release, following pagination
func (c *client) ListReleaseAssets(ctx context.Context, owner, repo string, releaseID int64) ([]*github.ReleaseAsset, error) {
	var assets []*github.ReleaseAsset
	opts := &github.ListOptions{PerPage: listPageSize}

	for {
		page, resp, err := c.githubClient.Repositories.ListReleaseAssets(ctx, owner, repo, releaseID, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list release assets",
				goerr.V("owner", owner), goerr.V("repo", repo),
				goerr.V("release_id", releaseID), goerr.T(types.ErrTagRemoteCall))
		}
		assets = append(assets, page...)
		if resp.NextPage == 0 {
			return assets, nil
		}
		opts.Page = resp.NextPage
	}
}

// DeleteReleaseAsset removes a single asset by id
func (c *client) DeleteReleaseAsset(ctx context.Context, owner, repo string, assetID int64) error {
	if _, err := c.githubClient.Repositories.DeleteReleaseAsset(ctx, owner, repo, assetID); err != nil {
		return goerr.Wrap(err, "failed to delete release asset",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("asset_id", assetID), goerr.T(types.ErrTagRemoteCall))
	}
	return nil
}

// UploadReleaseAsset uploads a local file as a release asset. go-github
// derives the content length from the file itself.
func (c *client) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, opts *github.UploadOptions, file *os.File) (*github.ReleaseAsset, error) {
	asset, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseID, opts, file)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload release asset",
			goerr.V("owner", owner), goerr.V("repo", repo),
			goerr.V("release_id", releaseID), goerr.V("name", opts.Name),
			goerr.T(types.ErrTagRemoteCall))
	}
	return asset, nil
}
