package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// HistoryReader reads changelog records from a Git repository.
type HistoryReader struct {
	repo        *Repository
	opts        ReadOptions
	filterCache map[string]bool
}

// NewHistoryReader creates a new history reader for the given repository.
func NewHistoryReader(repo *Repository, opts ReadOptions) *HistoryReader {
	return &HistoryReader{
		repo:        repo,
		opts:        opts,
		filterCache: make(map[string]bool),
	}
}

// Collect returns one record per commit in the two-dot range from..to, in
// reverse chronological order. The from commit itself is never included.
// from may be RootRef to start at the first commit of history.
func (r *HistoryReader) Collect(ctx context.Context, from, to string) ([]commitlog.CommitInfo, error) {
	if from == RootRef {
		root, err := r.repo.ResolveRoot(ctx)
		if err != nil {
			return nil, err
		}
		from = root
	}

	fromHash, err := r.repo.ResolveRef(from)
	if err != nil {
		return nil, err
	}
	toHash, err := r.repo.ResolveRef(to)
	if err != nil {
		return nil, err
	}

	if fromHash == toHash {
		return []commitlog.CommitInfo{}, nil
	}

	switch r.opts.Backend {
	case BackendGitCLI:
		return r.collectGitCLI(ctx, fromHash, toHash)
	default:
		return r.collectGoGit(ctx, fromHash, toHash)
	}
}

func (r *HistoryReader) collectGoGit(ctx context.Context, from, to plumbing.Hash) ([]commitlog.CommitInfo, error) {
	excluded, err := r.ancestors(ctx, from)
	if err != nil {
		return nil, err
	}

	cIter, err := r.repo.repo.Log(&gogit.LogOptions{From: to, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("walk history from %s: %w", to, err)
	}
	defer cIter.Close()

	results := []commitlog.CommitInfo{}

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := excluded[c.Hash]; ok {
			return nil
		}

		if r.opts.HasFilters() {
			paths, err := commitPaths(c)
			if err != nil {
				return err
			}
			matches, err := r.anyMatches(paths)
			if err != nil {
				return err
			}
			if !matches {
				return nil
			}
		}

		results = r.record(results, commitlog.FromRawCommit(
			c.Message,
			c.Author.Name,
			c.Author.Email,
			c.Committer.When,
			c.Hash.String(),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logDebug("[git] collected %d commits in %s..%s", len(results), from, to)
	return results, nil
}

// record appends info to results and reports progress.
func (r *HistoryReader) record(results []commitlog.CommitInfo, info commitlog.CommitInfo) []commitlog.CommitInfo {
	results = append(results, info)
	logDebug("[git] %s %s", info.ShortHash(), info.Title)
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(len(results))
	}
	return results
}

// ancestors returns the set of commits reachable from hash, hash included.
func (r *HistoryReader) ancestors(ctx context.Context, hash plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := r.repo.repo.Log(&gogit.LogOptions{From: hash})
	if err != nil {
		return nil, fmt.Errorf("walk history from %s: %w", hash, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = struct{}{}
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// commitPaths lists the paths touched by a commit. Root commits list every
// file of their tree; other commits are compared against their first parent.
func commitPaths(c *object.Commit) ([]string, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	var paths []string
	if c.NumParents() == 0 {
		err := tree.Files().ForEach(func(f *object.File) error {
			paths = append(paths, f.Name)
			return nil
		})
		return paths, err
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, err
	}
	for _, change := range changes {
		if change.To.Name != "" {
			paths = append(paths, change.To.Name)
		} else {
			paths = append(paths, change.From.Name)
		}
	}
	return paths, nil
}

func (r *HistoryReader) anyMatches(paths []string) (bool, error) {
	for _, p := range paths {
		ok, err := r.matchesFilters(p)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *HistoryReader) matchesFilters(path string) (bool, error) {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	if cached, ok := r.filterCache[path]; ok {
		return cached, nil
	}

	result, err := r.evaluateFilters(path)
	if err != nil {
		return false, err
	}
	r.filterCache[path] = result
	return result, nil
}

func (r *HistoryReader) evaluateFilters(path string) (bool, error) {
	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true, nil
	}

	for _, pattern := range r.opts.Include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
