package usecase

import (
	"context"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// ensureRelease creates the release when no release with the spec's name
// exists, otherwise updates its metadata in place. The returned id is always
// re-resolved by re-listing releases, not taken from the create/update
// response, to tolerate partial response objects.
func (uc *publishUseCase) ensureRelease(ctx context.Context, spec *model.ReleaseSpec) (int64, error) {
	logger := ctxlog.From(ctx)

	existing, err := uc.findReleaseByName(ctx, spec)
	if err != nil {
		return 0, err
	}

	if existing == nil {
		body := spec.Body
		if body == "" {
			commit, err := uc.client.GetCommit(ctx, spec.Owner, spec.Repo, spec.CommitSHA)
			if err != nil {
				return 0, err
			}
			body = commit.GetMessage()
		}

		if _, err := uc.client.CreateRelease(ctx, spec.Owner, spec.Repo, &github.RepositoryRelease{
			TagName:    github.Ptr(spec.TagName),
			Name:       github.Ptr(spec.ReleaseName),
			Body:       github.Ptr(body),
			Draft:      github.Ptr(spec.Draft),
			Prerelease: github.Ptr(spec.Prerelease),
		}); err != nil {
			return 0, err
		}

		logger.Info("Created release",
			"release_name", spec.ReleaseName,
			"tag_name", spec.TagName,
			"draft", spec.Draft,
			"prerelease", spec.Prerelease,
		)
	} else {
		// The tag association is not altered here; it lives on the tag name
		// already stored on the release.
		if _, err := uc.client.EditRelease(ctx, spec.Owner, spec.Repo, existing.GetID(), &github.RepositoryRelease{
			Name:       github.Ptr(spec.ReleaseName),
			Body:       github.Ptr(spec.Body),
			Draft:      github.Ptr(spec.Draft),
			Prerelease: github.Ptr(spec.Prerelease),
		}); err != nil {
			return 0, err
		}

		logger.Info("Updated existing release",
			"release_id", existing.GetID(),
			"release_name", spec.ReleaseName,
			"draft", spec.Draft,
			"prerelease", spec.Prerelease,
		)
	}

	resolved, err := uc.findReleaseByName(ctx, spec)
	if err != nil {
		return 0, err
	}
	if resolved == nil {
		return 0, goerr.New("release not found after create/update",
			goerr.V("release_name", spec.ReleaseName), goerr.T(types.ErrTagRemoteNotFound))
	}

	return resolved.GetID(), nil
}

// findReleaseByName matches releases by exact name, first match wins
func (uc *publishUseCase) findReleaseByName(ctx context.Context, spec *model.ReleaseSpec) (*github.RepositoryRelease, error) {
	releases, err := uc.client.ListReleases(ctx, spec.Owner, spec.Repo)
	if err != nil {
		return nil, err
	}

	for _, release := range releases {
		if release.GetName() == spec.ReleaseName {
			return release, nil
		}
	}

	return nil, nil
}
