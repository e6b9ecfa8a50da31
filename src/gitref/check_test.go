package gitref

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/premerge/src/merge"
)

const someHash = "6ecf0ef2c2dffb796033e5a02219af86ec6584e5"

func repoWithRemote(t *testing.T, repo *git.Repository) {
	t.Helper()

	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://git.example.com/team/app.git"},
	})
	require.NoError(t, err)

	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "main"), plumbing.NewHash(someHash))
	require.NoError(t, repo.Storer.SetReference(ref))
}

func TestCheckRepository(t *testing.T) {
	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)
	repoWithRemote(t, repo)

	tests := []struct {
		name                  string
		opts                  merge.Options
		remoteFound, refFound bool
	}{
		{"present", merge.New("origin", "main", "", ""), true, true},
		{"missing branch", merge.New("origin", "develop", "", ""), true, false},
		{"missing remote", merge.New("upstream", "main", "", ""), false, false},
		{"empty", merge.New("", "", "", ""), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := CheckRepository(context.Background(), repo, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.remoteFound, report.RemoteFound)
			assert.Equal(t, tt.refFound, report.RefFound)
			assert.Equal(t, tt.remoteFound && tt.refFound, report.OK())
		})
	}

	report, err := CheckRepository(context.Background(), repo, merge.New("origin", "main", "", ""))
	require.NoError(t, err)
	assert.Equal(t, plumbing.ReferenceName("refs/remotes/origin/main"), report.RefName)
	assert.Equal(t, []string{"https://git.example.com/team/app.git"}, report.URLs)
	assert.Equal(t, someHash, report.Hash.String())
	assert.Equal(t, Unknown, report.Forge)
	assert.Empty(t, report.BranchURL)
}

func TestCheckRepositoryForge(t *testing.T) {
	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "upstream",
		URLs: []string{"git@github.com:sofmeright/premerge.git"},
	})
	require.NoError(t, err)

	report, err := CheckRepository(context.Background(), repo, merge.New("upstream", "release/1.x", "", ""))
	require.NoError(t, err)
	assert.True(t, report.RemoteFound)
	assert.False(t, report.RefFound)
	assert.Equal(t, GitHub, report.Forge)
	assert.Equal(t, "https://github.com/sofmeright/premerge/tree/release/1.x", report.BranchURL)
}

func TestCheckRepositoryCancelled(t *testing.T) {
	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = CheckRepository(ctx, repo, merge.New("origin", "main", "", ""))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckOnDisk(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	repoWithRemote(t, repo)

	sub := filepath.Join(dir, "nested", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	report, err := Check(context.Background(), sub, merge.New("origin", "main", "ours", "FF"))
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestCheckNotARepository(t *testing.T) {
	_, err := Check(context.Background(), t.TempDir(), merge.New("origin", "main", "", ""))
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}
