package adapter

import (
	"fmt"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/reindex/internal/model"
)

// GitAdapter abstracts the version-control operations the mover needs so
// that moves preserve file history. Operations shell out to the git CLI
// rather than linking a git library; that keeps staged renames consistent
// with the user's own git configuration.
type GitAdapter interface {
	// Add stages a new file.
	Add(path m.Path) error

	// Remove stages the removal of a tracked file and deletes it from the
	// working tree.
	Remove(path m.Path) error

	// Move relocates a tracked file, staging the rename.
	Move(from, to m.Path) error
}

// LocalGitAdapter runs git commands through os/exec. The run function is
// injectable so tests can capture invocations without a git binary.
type LocalGitAdapter struct {
	run func(args ...string) ([]byte, error)
}

// NewLocalGitAdapter constructs a LocalGitAdapter backed by the git CLI.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{run: runGit}
}

func runGit(args ...string) ([]byte, error) {
	return exec.Command("git", args...).CombinedOutput()
}

// Add stages a new file.
func (g *LocalGitAdapter) Add(path m.Path) error {
	return g.git("add", string(path))
}

// Remove stages the removal of a tracked file.
func (g *LocalGitAdapter) Remove(path m.Path) error {
	return g.git("rm", "--quiet", string(path))
}

// Move relocates a tracked file, staging the rename.
func (g *LocalGitAdapter) Move(from, to m.Path) error {
	return g.git("mv", string(from), string(to))
}

func (g *LocalGitAdapter) git(args ...string) error {
	out, err := g.run(args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}

		return fmt.Errorf("git %s: %w", args[0], err)
	}

	return nil
}
