package git

import (
	"fmt"
	"strings"
)

// RootRef is the revision alias for "the first commit of history".
const RootRef = "root"

// Backend selects how commit history is read.
type Backend string

const (
	// BackendGoGit walks history in-process with go-git.
	BackendGoGit Backend = "gogit"
	// BackendGitCLI shells out to the git executable.
	BackendGitCLI Backend = "gitcli"
)

// ParseBackend parses a backend name. An empty name selects go-git.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gogit", "go-git":
		return BackendGoGit, nil
	case "gitcli", "git", "cli":
		return BackendGitCLI, nil
	default:
		return "", fmt.Errorf("invalid backend: %q (expected gogit or gitcli)", s)
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	Backend    Backend
	Include    []string // Glob patterns to include
	Exclude    []string // Glob patterns to exclude
	OnProgress func(collected int)
}

// HasFilters reports whether any path filter is configured.
func (o ReadOptions) HasFilters() bool {
	return len(o.Include) > 0 || len(o.Exclude) > 0
}

// AcquireOptions configures how a repository target is opened or cloned.
type AcquireOptions struct {
	// CloneDir is where a remote target is cloned. Default: "repo".
	CloneDir string
	// OnCloneStart is called before a clone begins.
	OnCloneStart func(url, dir string)
	// OnCloneDone is called after a clone attempt with its result.
	OnCloneDone func(err error)
}
