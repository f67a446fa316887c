package gitutils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	OsStat = os.Stat

	filepathAbs  = filepath.Abs
	gitPlainOpen = git.PlainOpen

	repoHeadRef = func(repo *git.Repository) (*plumbing.Reference, error) {
		return repo.Reference(plumbing.HEAD, false)
	}
)

var ErrNotRepository = errors.New("not a git repository")

// GetRepositoryRoot checks parent directories if this is a subdirectory of a repo
func GetRepositoryRoot(dirPath string) (repoRootDir string) {
	dirPath, err := filepathAbs(dirPath)
	if err != nil {
		return ""
	}
	for {
		gitPath := filepath.Join(dirPath, ".git")
		if stat, err := OsStat(gitPath); err == nil {
			if stat.IsDir() {
				return dirPath
			}
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			break
		}
		dirPath = parent
	}
	return ""
}

// GetBranch returns the branch checked out in the repository containing
// dirPath, or a short commit hash for a detached HEAD.
// A repository without commits still reports its branch.
func GetBranch(dirPath string) (string, error) {
	repoRoot := GetRepositoryRoot(dirPath)
	if repoRoot == "" {
		return "", ErrNotRepository
	}
	repo, err := gitPlainOpen(repoRoot)
	if err != nil {
		return "", err
	}
	head, err := repoHeadRef(repo)
	if err != nil {
		return "", err
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return head.Hash().String()[:7], nil
}
