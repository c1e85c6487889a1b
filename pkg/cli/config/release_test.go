package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/herald/pkg/cli/config"
)

func TestRelease_Resolve(t *testing.T) {
	workspace := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(workspace, "a.json"), []byte("{}"), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(workspace, "b.bin"), []byte("binary"), 0644))

	githubCfg := &config.GitHub{
		Repository: "m-mizutani/example",
		Ref:        "refs/tags/v1.2",
		CommitSHA:  "abc123",
		Workspace:  workspace,
	}

	releaseCfg := &config.Release{
		Files:      "a.json, b.bin",
		Draft:      true,
		Prerelease: true,
	}

	spec, err := releaseCfg.Resolve(githubCfg)
	gt.NoError(t, err)

	gt.Value(t, spec.Owner).Equal("m-mizutani")
	gt.Value(t, spec.Repo).Equal("example")
	gt.Value(t, spec.ReleaseName).Equal("v1.2")
	gt.Value(t, spec.TagName).Equal("v1.2")
	gt.Value(t, spec.Draft).Equal(true)
	gt.Value(t, spec.Prerelease).Equal(true)

	gt.Number(t, len(spec.Files)).Equal(2)
	gt.Value(t, spec.Files[0].Name).Equal("a.json")
	gt.Value(t, spec.Files[0].Path).Equal(filepath.Join(workspace, "a.json"))
	gt.Value(t, spec.Files[0].Size).Equal(int64(2))
	gt.String(t, spec.Files[0].ContentType).Contains("application/json")
	gt.Value(t, spec.Files[1].Name).Equal("b.bin")
}

func TestRelease_Resolve_AbsolutePathWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.tar.gz")
	gt.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	githubCfg := &config.GitHub{
		Repository: "owner/repo",
		CommitSHA:  "abc123",
		Workspace:  t.TempDir(), // file does not exist under the workspace
	}
	releaseCfg := &config.Release{
		Name:  "v1.0",
		Files: path,
	}

	spec, err := releaseCfg.Resolve(githubCfg)
	gt.NoError(t, err)
	gt.Number(t, len(spec.Files)).Equal(1)
	gt.Value(t, spec.Files[0].Path).Equal(path)
}

func TestRelease_Resolve_MissingFileFails(t *testing.T) {
	githubCfg := &config.GitHub{
		Repository: "owner/repo",
		CommitSHA:  "abc123",
		Workspace:  t.TempDir(),
	}
	releaseCfg := &config.Release{
		Name:  "v1.0",
		Files: "no-such-file.zip",
	}

	spec, err := releaseCfg.Resolve(githubCfg)
	gt.Error(t, err)
	gt.Value(t, spec).Nil()
	gt.String(t, err.Error()).Contains("release asset file not found")
}

func TestRelease_Resolve_MissingCommitSHAFails(t *testing.T) {
	githubCfg := &config.GitHub{
		Repository: "owner/repo",
	}
	releaseCfg := &config.Release{Name: "v1.0"}

	_, err := releaseCfg.Resolve(githubCfg)
	gt.Error(t, err)
}

func TestGitHub_SplitRepository(t *testing.T) {
	tests := []struct {
		name       string
		repository string
		wantOwner  string
		wantRepo   string
		wantErr    bool
	}{
		{name: "owner and name", repository: "m-mizutani/herald", wantOwner: "m-mizutani", wantRepo: "herald"},
		{name: "missing name", repository: "m-mizutani", wantErr: true},
		{name: "empty owner", repository: "/herald", wantErr: true},
		{name: "empty", repository: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.GitHub{Repository: tt.repository}
			owner, repo, err := cfg.SplitRepository()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, owner).Equal(tt.wantOwner)
			gt.Value(t, repo).Equal(tt.wantRepo)
		})
	}
}
