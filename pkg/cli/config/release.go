package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Release holds the raw declarative release inputs before resolution
type Release struct {
	Name          string
	Tag           string
	Message       string
	Body          string
	Draft         bool
	Prerelease    bool
	Files         string
	ReplaceAssets bool
	UpdateTag     bool
}

// Flags returns CLI flags for the release inputs
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "release-name",
			Usage:       "Release name (derived from the ref when empty)",
			Destination: &c.Name,
			Sources:     cli.EnvVars("HERALD_RELEASE_NAME"),
		},
		&cli.StringFlag{
			Name:        "tag-name",
			Usage:       "Tag name (defaults to the release name)",
			Destination: &c.Tag,
			Sources:     cli.EnvVars("HERALD_TAG_NAME"),
		},
		&cli.StringFlag{
			Name:        "message",
			Usage:       "Tag annotation message",
			Destination: &c.Message,
			Sources:     cli.EnvVars("HERALD_MESSAGE"),
		},
		&cli.StringFlag{
			Name:        "body",
			Usage:       "Release body (defaults to the commit message)",
			Destination: &c.Body,
			Sources:     cli.EnvVars("HERALD_BODY"),
		},
		&cli.BoolFlag{
			Name:        "draft",
			Usage:       "Mark the release as a draft",
			Destination: &c.Draft,
			Sources:     cli.EnvVars("HERALD_DRAFT"),
		},
		&cli.BoolFlag{
			Name:        "prerelease",
			Usage:       "Mark the release as a prerelease",
			Destination: &c.Prerelease,
			Sources:     cli.EnvVars("HERALD_PRERELEASE"),
		},
		&cli.StringFlag{
			Name:        "files",
			Usage:       "Asset files, separated by space, comma, tab or newline",
			Destination: &c.Files,
			Sources:     cli.EnvVars("HERALD_FILES"),
		},
		&cli.BoolFlag{
			Name:        "replace-assets",
			Usage:       "Delete every existing asset before uploading",
			Destination: &c.ReplaceAssets,
			Sources:     cli.EnvVars("HERALD_REPLACE_ASSETS"),
		},
		&cli.BoolFlag{
			Name:        "update-tag",
			Usage:       "Re-point the tag at the current commit after publishing",
			Destination: &c.UpdateTag,
			Sources:     cli.EnvVars("HERALD_UPDATE_TAG"),
		},
	}
}

// Resolve validates the raw inputs and produces the immutable spec a publish
// run operates on. Names are resolved from the ref when unset, and every
// referenced file must exist, either as given or relative to the workspace
// root, so a broken file list fails before any remote call.
func (c *Release) Resolve(gh *GitHub) (*model.ReleaseSpec, error) {
	owner, repo, err := gh.SplitRepository()
	if err != nil {
		return nil, err
	}

	if gh.CommitSHA == "" {
		return nil, goerr.New("commit SHA is required", goerr.T(types.ErrTagInput))
	}

	releaseName, tagName := model.ResolveNames(c.Name, c.Tag, gh.Ref)

	var files []model.LocalFile
	for _, token := range model.SplitFileList(c.Files) {
		file, err := resolveFile(token, gh.Workspace)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return &model.ReleaseSpec{
		Owner:         owner,
		Repo:          repo,
		CommitSHA:     gh.CommitSHA,
		ReleaseName:   releaseName,
		TagName:       tagName,
		Message:       c.Message,
		Body:          c.Body,
		Draft:         c.Draft,
		Prerelease:    c.Prerelease,
		Files:         files,
		ReplaceAssets: c.ReplaceAssets,
		UpdateTag:     c.UpdateTag,
	}, nil
}

// resolveFile locates a file token as given, then relative to the workspace
func resolveFile(token, workspace string) (model.LocalFile, error) {
	for _, path := range []string{token, filepath.Join(workspace, token)} {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return model.LocalFile{
			Path:        path,
			Name:        filepath.Base(path),
			Size:        info.Size(),
			ContentType: model.ContentTypeFor(path),
		}, nil
	}

	return model.LocalFile{}, goerr.New("release asset file not found",
		goerr.V("file", token), goerr.V("workspace", workspace), goerr.T(types.ErrTagInput))
}
