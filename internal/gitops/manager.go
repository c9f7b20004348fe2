// File path: internal/gitops/manager.go

// Package gitops automates the branch/commit/push flow for generated
// documentation. Operations shell out to the git binary in the target
// repository.
package gitops

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

// Manager runs git commands inside one repository.
type Manager struct {
	repoPath string
}

// NewManager builds a manager for the repository at repoPath.
func NewManager(repoPath string) *Manager {
	if strings.TrimSpace(repoPath) == "" {
		repoPath = "."
	}
	return &Manager{repoPath: repoPath}
}

func (m *Manager) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = m.repoPath
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		common.Logger().Warn("gitops: command failed", "args", strings.Join(args, " "), "output", output, "error", err)
		return output, fmt.Errorf("git %s: %w", args[0], err)
	}
	return output, nil
}

// BranchName derives a timestamped branch name from a base.
func BranchName(base string, now time.Time) string {
	if strings.TrimSpace(base) == "" {
		base = "doc-update"
	}
	return fmt.Sprintf("%s-%s", base, now.Format("20060102-150405"))
}

// CreateBranch checks out a new timestamped branch and returns its name.
func (m *Manager) CreateBranch(ctx context.Context, base string) (string, error) {
	branch := BranchName(base, time.Now())
	common.Logger().Info("gitops: creating branch", "branch", branch)
	if _, err := m.run(ctx, "checkout", "-b", branch); err != nil {
		return "", err
	}
	return branch, nil
}

// CommitAll stages everything and commits with the given message.
func (m *Manager) CommitAll(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("gitops: commit message required")
	}
	if _, err := m.run(ctx, "add", "."); err != nil {
		return err
	}
	_, err := m.run(ctx, "commit", "-m", message)
	return err
}

// Push publishes the branch to origin. Credentials must already be
// configured in the environment.
func (m *Manager) Push(ctx context.Context, branch string) error {
	if strings.TrimSpace(branch) == "" {
		return errors.New("gitops: branch name required")
	}
	_, err := m.run(ctx, "push", "origin", branch)
	return err
}
