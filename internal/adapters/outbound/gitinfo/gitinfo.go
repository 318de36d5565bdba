// Package gitinfo reports version-control metadata for analyzed directories.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(rootPath string) bool {
	_, err := git.PlainOpen(rootPath)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(rootPath string) (string, error) {
	repo, err := git.PlainOpen(rootPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
