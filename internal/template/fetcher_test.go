package template

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/git"
	"github.com/mcpforge/mcpforge/internal/github"
	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Builtin(t *testing.T) {
	fetcher := NewFetcher(filesystem.NewMockFileSystem(), git.NewMockGitClient(), nil)

	snapshot, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceBuiltIn,
		Identifier: "basic-stdio",
	})
	require.NoError(t, err)
	defer func() { _ = snapshot.Release() }()

	assert.False(t, snapshot.Temporary())

	data, err := fs.ReadFile(snapshot.FS, "package.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name"`)
}

func TestFetcher_Builtin_NotFound(t *testing.T) {
	fetcher := NewFetcher(filesystem.NewMockFileSystem(), git.NewMockGitClient(), nil)

	_, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceBuiltIn,
		Identifier: "no-such-template",
	})

	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-template", notFound.Reference)
}

func TestFetcher_LocalPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x"}`), 0o644))

	fetcher := NewFetcher(filesystem.NewOSFileSystem(), git.NewMockGitClient(), nil)

	snapshot, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceLocalPath,
		Identifier: dir,
	})
	require.NoError(t, err)

	data, err := fs.ReadFile(snapshot.FS, "package.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(data))
}

func TestFetcher_LocalPath_NotFound(t *testing.T) {
	fetcher := NewFetcher(filesystem.NewOSFileSystem(), git.NewMockGitClient(), nil)

	_, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceLocalPath,
		Identifier: filepath.Join(t.TempDir(), "missing"),
	})

	var notFound *TemplateNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFetcher_Remote_Success(t *testing.T) {
	gitMock := git.NewMockGitClient()
	gitMock.CloneFunc = func(url, dest string) error {
		// A clone produces files plus VCS metadata.
		if err := os.MkdirAll(filepath.Join(dest, ".git"), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dest, ".git", "HEAD"), []byte("ref: refs/heads/main"), 0o644); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dest, "package.json"), []byte(`{"name":"remote"}`), 0o644)
	}

	tempBase := t.TempDir()
	fetcher := NewFetcher(filesystem.NewOSFileSystem(), gitMock, nil).WithTempBase(tempBase)

	snapshot, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceRemoteRepository,
		Identifier: "github.com/acme/remote-template",
	})
	require.NoError(t, err)

	assert.True(t, snapshot.Temporary())

	// Staging happens directly under the temp base with the tool's prefix.
	assert.Equal(t, tempBase, filepath.Dir(snapshot.Dir))
	assert.True(t, strings.HasPrefix(filepath.Base(snapshot.Dir), "mcpforge-"))

	clones := gitMock.Clones()
	require.Len(t, clones, 1)
	assert.Equal(t, "https://github.com/acme/remote-template.git", clones[0].URL)

	// VCS metadata is stripped from the snapshot.
	_, err = fs.Stat(snapshot.FS, ".git")
	assert.Error(t, err)

	data, err := fs.ReadFile(snapshot.FS, "package.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"remote"}`, string(data))

	// Release removes the staging directory.
	require.NoError(t, snapshot.Release())
	_, err = os.Stat(snapshot.Dir)
	assert.True(t, os.IsNotExist(err))
}

func TestFetcher_Remote_FailureCleansUpTempDir(t *testing.T) {
	gitMock := git.NewMockGitClient()
	gitMock.CloneError = errors.New("remote hung up unexpectedly")

	tempBase := t.TempDir()
	fetcher := NewFetcher(filesystem.NewOSFileSystem(), gitMock, nil).WithTempBase(tempBase)

	_, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceRemoteRepository,
		Identifier: "https://github.com/acme/broken.git",
	})

	var fetchFailed *FetchFailedError
	require.ErrorAs(t, err, &fetchFailed)
	assert.ErrorContains(t, fetchFailed, "remote hung up")

	// No residual staging directory survives a failed clone.
	entries, readErr := os.ReadDir(tempBase)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestFetcher_Remote_ResolvesCloneURLThroughAPI(t *testing.T) {
	ghMock := github.NewMockClient()
	ghMock.SetupRepository("acme", "remote-template")

	gitMock := git.NewMockGitClient()
	fetcher := NewFetcher(filesystem.NewOSFileSystem(), gitMock, ghMock).WithTempBase(t.TempDir())

	_, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceRemoteRepository,
		Identifier: "github.com/acme/remote-template",
	})
	require.NoError(t, err)

	clones := gitMock.Clones()
	require.Len(t, clones, 1)
	assert.Equal(t, "https://github.com/acme/remote-template.git", clones[0].URL)
}

func TestFetcher_Remote_APIFailureFallsBackToNormalizedURL(t *testing.T) {
	ghMock := github.NewMockClient()
	ghMock.GetRepositoryError = errors.New("rate limited")

	gitMock := git.NewMockGitClient()
	fetcher := NewFetcher(filesystem.NewOSFileSystem(), gitMock, ghMock).WithTempBase(t.TempDir())

	_, err := fetcher.Fetch(context.Background(), models.TemplateReference{
		Kind:       models.SourceRemoteRepository,
		Identifier: "https://github.com/acme/remote-template",
	})
	require.NoError(t, err)

	clones := gitMock.Clones()
	require.Len(t, clones, 1)
	assert.Equal(t, "https://github.com/acme/remote-template.git", clones[0].URL)
}

func TestFetcher_Remote_UniqueTempDirs(t *testing.T) {
	gitMock := git.NewMockGitClient()
	tempBase := t.TempDir()
	fetcher := NewFetcher(filesystem.NewOSFileSystem(), gitMock, nil).WithTempBase(tempBase)

	ref := models.TemplateReference{
		Kind:       models.SourceRemoteRepository,
		Identifier: "https://github.com/acme/template.git",
	}

	first, err := fetcher.Fetch(context.Background(), ref)
	require.NoError(t, err)
	second, err := fetcher.Fetch(context.Background(), ref)
	require.NoError(t, err)

	assert.NotEqual(t, first.Dir, second.Dir)
}
