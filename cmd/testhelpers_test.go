package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// isolateConfig keeps user and environment configuration out of a test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"CHANGELOG_DEFAULTS__FORMAT", "CHANGELOG_DEFAULTS__OUTPUT", "CHANGELOG_WRITER__IGNORED_TYPES"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

type testCommit struct {
	message string
	author  string
}

// createRepo builds a repository with one commit per entry, oldest first.
func createRepo(t *testing.T, commits ...testCommit) string {
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

	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, c := range commits {
		name := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(name, []byte(c.message), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add("file.txt"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		sig := &object.Signature{Name: c.author, Email: "dev@example.com", When: when.Add(time.Duration(i) * time.Hour)}
		if _, err := wt.Commit(c.message, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}
	return dir
}
