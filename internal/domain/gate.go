package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/docstream/internal/adapter"
	m "github.com/mouse-blink/docstream/internal/model"
)

// DefaultMarker opts a file into documentation sync.
const DefaultMarker = "@livedoc"

const readmeName = "readme.md"

// Gate decides whether a file may be sent for documentation.
type Gate interface {
	Check(file m.Path, contents string) (m.Eligibility, error)
}

type gate struct {
	repo   adapter.Repository
	marker string
}

// NewGate creates a Gate. An empty marker falls back to DefaultMarker.
func NewGate(repo adapter.Repository, marker string) Gate {
	if marker == "" {
		marker = DefaultMarker
	}

	return &gate{repo: repo, marker: marker}
}

// Check requires the file to live in a repository, carry the marker (README
// files are exempt) and be tracked. Ineligible files are not an error; the
// reason is recorded on the result.
func (g *gate) Check(file m.Path, contents string) (m.Eligibility, error) {
	result := m.Eligibility{File: file}

	root, err := g.repo.Root(file)
	if err != nil {
		result.Reason = fmt.Sprintf("Not persisting file %s: not in a git repository", file)
		return result, nil //nolint:nilerr // Not being in a repository is a normal outcome
	}

	result.RepoRoot = root
	result.Repo = filepath.Base(string(root))

	rel, err := relativeTo(root, file)
	if err != nil {
		return result, err
	}

	result.Relative = rel

	if result.Branch, err = g.repo.CurrentBranch(root); err != nil {
		return result, fmt.Errorf("failed to read branch: %w", err)
	}

	if result.Commit, err = g.repo.LastCommit(root); err != nil {
		return result, fmt.Errorf("failed to read last commit: %w", err)
	}

	isReadme := strings.ToLower(filepath.Base(string(rel))) == readmeName
	result.Marker = strings.Contains(contents, g.marker)

	if !isReadme && !result.Marker {
		result.Reason = fmt.Sprintf("Not persisting file %s: %q not in file", rel, g.marker)
		return result, nil
	}

	if result.Tracked, err = g.repo.IsTracked(root, rel); err != nil {
		return result, fmt.Errorf("failed to check tracking: %w", err)
	}

	if !result.Tracked {
		result.Reason = fmt.Sprintf("Not persisting file %s: not tracked by git", rel)
		return result, nil
	}

	result.Eligible = true

	return result, nil
}

func relativeTo(root, file m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(file))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", file, err)
	}

	// go-git reports the symlink-resolved root, so resolve the file the same way.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	rootPath := string(root)
	if resolved, err := filepath.EvalSymlinks(rootPath); err == nil {
		rootPath = resolved
	}

	rel, err := filepath.Rel(rootPath, abs)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s: %w", file, err)
	}

	return m.Path(rel), nil
}
