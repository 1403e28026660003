package adapter

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"

	m "github.com/mouse-blink/docstream/internal/model"
)

// ErrNotRepository is returned when a path is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Repository exposes the version-control facts the eligibility gate needs.
type Repository interface {
	// Root returns the work tree root containing file.
	Root(file m.Path) (m.Path, error)
	// CurrentBranch returns the short name of HEAD, or "HEAD" when detached.
	CurrentBranch(root m.Path) (string, error)
	// LastCommit returns the hash HEAD points at.
	LastCommit(root m.Path) (string, error)
	// IsTracked reports whether rel (relative to root) is in the index.
	IsTracked(root m.Path, rel m.Path) (bool, error)
}

// GitRepository implements Repository with go-git.
type GitRepository struct{}

// NewGitRepository constructs a GitRepository.
func NewGitRepository() *GitRepository {
	return &GitRepository{}
}

// Root returns the work tree root containing file.
func (g *GitRepository) Root(file m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(file))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", file, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, file)
		}

		return "", fmt.Errorf("failed to open repository for %s: %w", file, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %s has no work tree", ErrNotRepository, file)
	}

	return m.Path(wt.Filesystem.Root()), nil
}

// CurrentBranch returns the short name of HEAD.
func (g *GitRepository) CurrentBranch(root m.Path) (string, error) {
	repo, err := g.open(root)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "HEAD", nil
	}

	return head.Name().Short(), nil
}

// LastCommit returns the hash HEAD points at.
func (g *GitRepository) LastCommit(root m.Path) (string, error) {
	repo, err := g.open(root)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// IsTracked reports whether rel is present in the index.
func (g *GitRepository) IsTracked(root m.Path, rel m.Path) (bool, error) {
	repo, err := g.open(root)
	if err != nil {
		return false, err
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return false, fmt.Errorf("failed to read index: %w", err)
	}

	if _, err := idx.Entry(filepath.ToSlash(string(rel))); err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to look up %s: %w", rel, err)
	}

	return true, nil
}

func (g *GitRepository) open(root m.Path) (*git.Repository, error) {
	repo, err := git.PlainOpen(string(root))
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, root)
		}

		return nil, fmt.Errorf("failed to open repository %s: %w", root, err)
	}

	return repo, nil
}
