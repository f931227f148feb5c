package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/daedaleanai/multibuild/log"
	"github.com/go-git/go-git/v5"
	"github.com/mattn/go-isatty"
)

// revision returns the HEAD commit of the git repository containing `projectDir` and whether
// anything below `projectDir` has uncommitted changes. Projects outside of a repository yield an
// empty revision.
func revision(projectDir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(projectDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		log.Debug("Project is not inside a git repository: %s.\n", err)
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		log.Debug("Failed to get repo HEAD: %s.\n", err)
		return "", false
	}
	hash := head.Hash().String()

	worktree, err := repo.Worktree()
	if err != nil {
		log.Warning("Failed to get repo worktree: %s.\n", err)
		return hash, false
	}

	prefix, err := relativeToWorktree(worktree.Filesystem.Root(), projectDir)
	if err != nil {
		log.Warning("Failed to locate project inside the repository: %s.\n", err)
		return hash, false
	}

	status, err := worktreeStatus(worktree)
	if err != nil {
		log.Warning("Failed to get repo status: %s.\n", err)
		return hash, false
	}

	dirty := false
	for file, fileStatus := range status {
		if fileStatus.Staging == git.Unmodified && fileStatus.Worktree == git.Unmodified {
			continue
		}
		if prefix == "" || strings.HasPrefix(file, prefix) {
			dirty = true
			break
		}
	}
	log.Debug("Project is at revision '%s' (uncommitted changes: %t).\n", hash, dirty)
	return hash, dirty
}

// relativeToWorktree returns the slash-separated prefix that status entries below `dir` start
// with, or "" if `dir` is the worktree root.
func relativeToWorktree(root, dir string) (string, error) {
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel) + "/", nil
}

// Computing the status hashes every file in the worktree, which takes a while on large projects.
func worktreeStatus(worktree *git.Worktree) (git.Status, error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Spinner.Suffix = " Checking project status"
		log.Spinner.Start()
		defer log.Spinner.Stop()
	}
	return worktree.Status()
}
