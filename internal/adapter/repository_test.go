package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docstream/internal/model"
)

func initRepo(t *testing.T) (string, string) {
	t.Helper()

	root := t.TempDir()
	repo, err := git.PlainInitWithOptions(root, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	require.NoError(t, err)

	file := filepath.Join(root, "src", "main.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte("#@livedoc\n"), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add("src/main.py")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return root, hash.String()
}

func TestGitRepository_Facts(t *testing.T) {
	root, commit := initRepo(t)
	repo := NewGitRepository()

	gotRoot, err := repo.Root(m.Path(filepath.Join(root, "src", "main.py")))
	require.NoError(t, err)

	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	gotResolved, err := filepath.EvalSymlinks(string(gotRoot))
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotResolved)

	branch, err := repo.CurrentBranch(gotRoot)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	last, err := repo.LastCommit(gotRoot)
	require.NoError(t, err)
	assert.Equal(t, commit, last)

	tracked, err := repo.IsTracked(gotRoot, m.Path(filepath.Join("src", "main.py")))
	require.NoError(t, err)
	assert.True(t, tracked)

	untracked, err := repo.IsTracked(gotRoot, "src/other.py")
	require.NoError(t, err)
	assert.False(t, untracked)
}

func TestGitRepository_NotRepository(t *testing.T) {
	dir := t.TempDir()
	repo := NewGitRepository()

	_, err := repo.Root(m.Path(filepath.Join(dir, "main.py")))
	require.ErrorIs(t, err, ErrNotRepository)

	_, err = repo.CurrentBranch(m.Path(dir))
	require.ErrorIs(t, err, ErrNotRepository)
}
