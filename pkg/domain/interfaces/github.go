package interfaces

import (
	"context"
	"os"

	"github.com/google/go-github/v74/github"
)

// RepositoryClient defines the GitHub operations a publish run performs.
// go-github types are exposed directly; list operations return the complete
// set across all pages.
type RepositoryClient interface {
	// ListTags lists every tag of the repository
	ListTags(ctx context.Context, owner, repo string) ([]*github.RepositoryTag, error)

	// CreateTagObject creates an annotated tag object (no ref)
	CreateTagObject(ctx context.Context, owner, repo string, tag *github.Tag) (*github.Tag, error)

	// CreateRef creates a git reference pointing at the given object
	CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, error)

	// UpdateRef moves an existing git reference to a new target
	UpdateRef(ctx context.Context, owner, repo string, ref *github.Reference, force bool) (*github.Reference, error)

	// GetCommit fetches a raw git commit by SHA
	GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, error)

	// ListReleases lists every release of the repository
	ListReleases(ctx context.Context, owner, repo string) ([]*github.RepositoryRelease, error)

	// CreateRelease creates a new release
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error)

	// EditRelease updates an existing release by id
	EditRelease(ctx context.Context, owner, repo string, id int64, release *github.RepositoryRelease) (*github.RepositoryRelease, error)

	// ListReleaseAssets lists every asset attached to a release
	ListReleaseAssets(ctx context.Context, owner, repo string, releaseID int64) ([]*github.ReleaseAsset, error)

	// DeleteReleaseAsset removes a single asset by id
	DeleteReleaseAsset(ctx context.Context, owner, repo string, assetID int64) error

	// UploadReleaseAsset uploads a local file as a release asset
	UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, opts *github.UploadOptions, file *os.File) (*github.ReleaseAsset, error)
}
