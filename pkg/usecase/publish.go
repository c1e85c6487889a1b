package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

type publishUseCase struct {
	client interfaces.RepositoryClient
}

// NewPublish creates a new instance of PublishUseCase
func NewPublish(client interfaces.RepositoryClient) interfaces.PublishUseCase {
	return &publishUseCase{
		client: client,
	}
}

// Run converges the remote tag, release and assets to the spec. Stages run
// strictly in order and every remote call is awaited before the next; the
// first failure aborts the run and the intermediate state is left as-is,
// re-running with the same input converges it.
func (uc *publishUseCase) Run(ctx context.Context, spec *model.ReleaseSpec) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Starting release reconciliation",
		"owner", spec.Owner,
		"repo", spec.Repo,
		"release_name", spec.ReleaseName,
		"tag_name", spec.TagName,
		"commit_sha", spec.CommitSHA,
		"file_count", len(spec.Files),
	)

	tagCreated, err := uc.ensureTag(ctx, spec)
	if err != nil {
		return nil, err
	}

	releaseID, err := uc.ensureRelease(ctx, spec)
	if err != nil {
		return nil, err
	}

	assets, err := uc.reconcileAssets(ctx, spec, releaseID)
	if err != nil {
		return nil, err
	}

	if spec.UpdateTag {
		if err := uc.repointTag(ctx, spec); err != nil {
			return nil, err
		}
	}

	result := &model.PublishResult{
		ReleaseID:   releaseID,
		ReleaseName: spec.ReleaseName,
		TagName:     spec.TagName,
		Draft:       spec.Draft,
		Prerelease:  spec.Prerelease,
		TagCreated:  tagCreated,
		Assets:      assets,
	}

	logger.Info("Release reconciliation complete",
		"release_id", result.ReleaseID,
		"release_name", result.ReleaseName,
		"tag_name", result.TagName,
		"tag_created", result.TagCreated,
		"assets", result.Assets,
	)

	return result, nil
}
