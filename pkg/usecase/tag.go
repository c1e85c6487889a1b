package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// Synthetic tagger identity for tags created by herald
const (
	taggerName  = "herald"
	taggerEmail = "herald@localhost"
)

// ensureTag makes sure a tag with the spec's name exists. An existing tag is
// returned untouched even when it points at a different commit; that
// correction only happens in repointTag after the release is published.
// Returns true when the tag was created by this run.
func (uc *publishUseCase) ensureTag(ctx context.Context, spec *model.ReleaseSpec) (bool, error) {
	logger := ctxlog.From(ctx)

	tags, err := uc.client.ListTags(ctx, spec.Owner, spec.Repo)
	if err != nil {
		return false, err
	}

	for _, tag := range tags {
		if tag.GetName() == spec.TagName {
			logger.Info("Tag already exists, leaving it untouched",
				"tag_name", spec.TagName,
				"commit_sha", tag.GetCommit().GetSHA(),
			)
			return false, nil
		}
	}

	message := spec.Message
	if message == "" {
		message = fmt.Sprintf("%s (automatically created)", spec.ReleaseName)
	}

	now := github.Timestamp{Time: time.Now()}
	tagObj, err := uc.client.CreateTagObject(ctx, spec.Owner, spec.Repo, &github.Tag{
		Tag:     github.Ptr(spec.TagName),
		Message: github.Ptr(message),
		Object: &github.GitObject{
			SHA:  github.Ptr(spec.CommitSHA),
			Type: github.Ptr("commit"),
		},
		Tagger: &github.CommitAuthor{
			Name:  github.Ptr(taggerName),
			Email: github.Ptr(taggerEmail),
			Date:  &now,
		},
	})
	if err != nil {
		return false, err
	}
	if tagObj.GetSHA() == "" {
		return false, goerr.New("created tag object has no SHA",
			goerr.V("tag_name", spec.TagName), goerr.T(types.ErrTagRemoteNotFound))
	}

	if _, err := uc.client.CreateRef(ctx, spec.Owner, spec.Repo, &github.Reference{
		Ref:    github.Ptr("refs/tags/" + spec.TagName),
		Object: &github.GitObject{SHA: github.Ptr(tagObj.GetSHA())},
	}); err != nil {
		return false, err
	}

	logger.Info("Created tag",
		"tag_name", spec.TagName,
		"tag_sha", tagObj.GetSHA(),
		"commit_sha", spec.CommitSHA,
	)

	return true, nil
}

// repointTag force-moves the tag ref to the current commit, overwriting
// whatever it referenced before
func (uc *publishUseCase) repointTag(ctx context.Context, spec *model.ReleaseSpec) error {
	logger := ctxlog.From(ctx)

	if _, err := uc.client.UpdateRef(ctx, spec.Owner, spec.Repo, &github.Reference{
		Ref:    github.Ptr("refs/tags/" + spec.TagName),
		Object: &github.GitObject{SHA: github.Ptr(spec.CommitSHA)},
	}, true); err != nil {
		return err
	}

	logger.Info("Re-pointed tag at current commit",
		"tag_name", spec.TagName,
		"commit_sha", spec.CommitSHA,
	)

	return nil
}
