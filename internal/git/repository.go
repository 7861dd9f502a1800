// Package git reads changelog records from a Git repository. It uses the
// go-git library for opening, cloning and walking history, and can fall back
// to the git executable for the history walk.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/changelog-go/internal/clierr"
)

// DefaultCloneDir is where remote targets are cloned when no directory is given.
const DefaultCloneDir = "repo"

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository is an opened Git repository.
type Repository struct {
	repo *gogit.Repository
	root string
}

// Open opens the repository containing path.
func Open(path string) (*Repository, error) {
	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, clierr.IO(err, "open repository at %s", path)
	}

	root := path
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{repo: repo, root: root}, nil
}

// OpenOrClone opens target if it is an existing directory. Otherwise target is
// treated as a URL and cloned into opts.CloneDir. A clone directory left by an
// earlier run is reused when its origin points at the same URL.
func OpenOrClone(ctx context.Context, target string, opts AcquireOptions) (*Repository, error) {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		logDebug("[git] %s exists, skip cloning", target)
		return Open(target)
	}

	dir := opts.CloneDir
	if dir == "" {
		dir = DefaultCloneDir
	}

	if _, err := os.Stat(dir); err == nil {
		existing, err := Open(dir)
		if err != nil {
			return nil, err
		}
		if url := existing.originURL(); url != target {
			return nil, clierr.IO(nil, "clone directory %s already holds %q, not %q", dir, url, target)
		}
		logDebug("[git] reusing clone of %s in %s", target, dir)
		return existing, nil
	}

	if opts.OnCloneStart != nil {
		opts.OnCloneStart(target, dir)
	}
	repo, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{URL: target})
	if opts.OnCloneDone != nil {
		opts.OnCloneDone(err)
	}
	if err != nil {
		return nil, clierr.IO(err, "clone %s into %s", target, dir)
	}

	logDebug("[git] cloned %s into %s", target, dir)
	return &Repository{repo: repo, root: dir}, nil
}

// Root returns the working tree root (or the repository path for bare repositories).
func (r *Repository) Root() string {
	return r.root
}

func (r *Repository) originURL() string {
	remote, err := r.repo.Remote(gogit.DefaultRemoteName)
	if err != nil {
		return ""
	}
	if urls := remote.Config().URLs; len(urls) > 0 {
		return urls[0]
	}
	return ""
}

// ResolveRef resolves a revision reference (branch, tag, hash, HEAD~2, ...) to a commit hash.
func (r *Repository) ResolveRef(ref string) (plumbing.Hash, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, clierr.Range(err, "cannot resolve revision %q", ref)
	}
	if _, err := r.repo.CommitObject(*hash); err != nil {
		return plumbing.ZeroHash, clierr.Range(err, "revision %q does not name a commit", ref)
	}
	logDebug("[git] resolved %s to %s", ref, hash)
	return *hash, nil
}

// ResolveRoot returns the hash of the parentless commit reachable from HEAD.
// When history has several roots the lexicographically smallest hash wins,
// so the choice does not depend on traversal order.
func (r *Repository) ResolveRoot(ctx context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", clierr.Range(err, "cannot resolve HEAD")
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return "", clierr.Range(err, "walk history from HEAD")
	}
	defer iter.Close()

	var roots []string
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.NumParents() == 0 {
			roots = append(roots, c.Hash.String())
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("find root commit: %w", err)
	}

	if len(roots) == 0 {
		return "", clierr.Range(errors.New("no parentless commit"), "cannot resolve %s", RootRef)
	}
	sort.Strings(roots)
	if len(roots) > 1 {
		logDebug("[git] %d root commits, using %s", len(roots), roots[0])
	}
	return roots[0], nil
}
