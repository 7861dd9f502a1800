package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo is a throwaway repository built with go-git.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
	tick time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	return &testRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		wt:   wt,
		tick: time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("", 2*3600)),
	}
}

func (r *testRepo) write(rel, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		r.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		r.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(rel); err != nil {
		r.t.Fatalf("Add: %v", err)
	}
}

func (r *testRepo) nextSignature() *object.Signature {
	r.tick = r.tick.Add(time.Hour)
	return &object.Signature{Name: "Test Author", Email: "test@example.com", When: r.tick}
}

// commit writes file with unique content and commits it.
func (r *testRepo) commit(msg, file string) plumbing.Hash {
	r.t.Helper()
	r.write(file, msg+r.tick.String()+"\n")
	return r.commitWith(msg, nil)
}

func (r *testRepo) commitWith(msg string, parents []plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	sig := r.nextSignature()
	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{
		Author:    sig,
		Committer: sig,
		Parents:   parents,
	})
	if err != nil {
		r.t.Fatalf("Commit: %v", err)
	}
	return hash
}

// orphan stores a parentless commit that no branch points at.
func (r *testRepo) orphan(msg string, tree plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	sig := r.nextSignature()
	c := &object.Commit{
		Author:    *sig,
		Committer: *sig,
		Message:   msg,
		TreeHash:  tree,
	}
	obj := r.repo.Storer.NewEncodedObject()
	if err := c.Encode(obj); err != nil {
		r.t.Fatalf("Encode: %v", err)
	}
	hash, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		r.t.Fatalf("SetEncodedObject: %v", err)
	}
	return hash
}

func (r *testRepo) open() *Repository {
	r.t.Helper()
	repo, err := Open(r.dir)
	if err != nil {
		r.t.Fatalf("Open: %v", err)
	}
	return repo
}
