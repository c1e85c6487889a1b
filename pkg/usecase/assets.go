package usecase

import (
	"context"
	"os"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// reconcileAssets deletes stale assets and uploads the spec's files. An
// existing asset is deleted when replace-all is set or its name collides with
// an incoming file, so re-running with the same file uploads a fresh copy
// instead of failing on the name collision. Unrelated assets survive unless
// replace-all is set. Returns the uploaded asset names in upload order.
func (uc *publishUseCase) reconcileAssets(ctx context.Context, spec *model.ReleaseSpec, releaseID int64) ([]string, error) {
	logger := ctxlog.From(ctx)

	existing, err := uc.client.ListReleaseAssets(ctx, spec.Owner, spec.Repo, releaseID)
	if err != nil {
		return nil, err
	}

	incoming := make(map[string]bool, len(spec.Files))
	for _, file := range spec.Files {
		incoming[file.Name] = true
	}

	for _, asset := range existing {
		if !spec.ReplaceAssets && !incoming[asset.GetName()] {
			continue
		}
		if err := uc.client.DeleteReleaseAsset(ctx, spec.Owner, spec.Repo, asset.GetID()); err != nil {
			return nil, err
		}
		logger.Info("Deleted stale release asset",
			"asset_id", asset.GetID(),
			"asset_name", asset.GetName(),
		)
	}

	var uploaded []string
	for _, file := range spec.Files {
		if err := uc.uploadAsset(ctx, spec, file); err != nil {
			return nil, err
		}
		uploaded = append(uploaded, file.Name)
	}

	return uploaded, nil
}

// uploadAsset uploads a single file. The upload target is re-resolved by
// name rather than reusing the id from the release stage, tolerating release
// metadata changes between stages.
func (uc *publishUseCase) uploadAsset(ctx context.Context, spec *model.ReleaseSpec, file model.LocalFile) error {
	logger := ctxlog.From(ctx)

	release, err := uc.findReleaseByName(ctx, spec)
	if err != nil {
		return err
	}
	if release == nil {
		return goerr.New("upload target release not found",
			goerr.V("release_name", spec.ReleaseName),
			goerr.V("file", file.Name), goerr.T(types.ErrTagRemoteNotFound))
	}

	fh, err := os.Open(file.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to open release asset file",
			goerr.V("path", file.Path), goerr.T(types.ErrTagInput))
	}
	defer fh.Close()

	asset, err := uc.client.UploadReleaseAsset(ctx, spec.Owner, spec.Repo, release.GetID(), &github.UploadOptions{
		Name:      file.Name,
		MediaType: file.ContentType,
	}, fh)
	if err != nil {
		return err
	}

	logger.Info("Uploaded release asset",
		"asset_id", asset.GetID(),
		"asset_name", file.Name,
		"content_type", file.ContentType,
		"size_bytes", file.Size,
	)

	return nil
}
