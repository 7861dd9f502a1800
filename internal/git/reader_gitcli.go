package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// Each commit is prefixed by 0x1e (record separator); header fields are
// separated by 0x1f (unit separator). Message bodies may contain newlines,
// so neither newline nor NUL can delimit records.
const gitCLIFormat = "%x1e%H%x1f%an%x1f%ae%x1f%cI%x1f%B%x1f"

type gitLogRecord struct {
	sha         string
	authorName  string
	authorEmail string
	committed   time.Time
	message     string
	paths       []string
}

func (r *HistoryReader) collectGitCLI(ctx context.Context, from, to plumbing.Hash) ([]commitlog.CommitInfo, error) {
	args := []string{
		"-C", r.repo.Root(),
		"log",
		"--no-color",
		"--pretty=format:" + gitCLIFormat,
	}
	if r.opts.HasFilters() {
		// Merges list their changes against the first parent, matching commitPaths.
		args = append(args, "--name-only", "-z", "--diff-merges=first-parent")
	}
	args = append(args, from.String()+".."+to.String())

	logDebug("[git] git %s", strings.Join(args, " "))

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	records, err := parseGitLog(out)
	if err != nil {
		return nil, err
	}

	results := make([]commitlog.CommitInfo, 0, len(records))
	for _, rec := range records {
		if r.opts.HasFilters() {
			matches, err := r.anyMatches(rec.paths)
			if err != nil {
				return nil, err
			}
			if !matches {
				continue
			}
		}

		results = r.record(results, commitlog.FromRawCommit(
			rec.message,
			rec.authorName,
			rec.authorEmail,
			rec.committed,
			rec.sha,
		))
	}

	return results, nil
}

func parseGitLog(out []byte) ([]gitLogRecord, error) {
	chunks := bytes.Split(out, []byte{0x1e})
	records := make([]gitLogRecord, 0, len(chunks))

	for _, chunk := range chunks {
		if len(bytes.TrimSpace(bytes.Trim(chunk, "\x00"))) == 0 {
			continue
		}

		fields := bytes.SplitN(chunk, []byte{0x1f}, 6)
		if len(fields) < 6 {
			return nil, fmt.Errorf("unexpected git log record format")
		}

		when, err := time.Parse(time.RFC3339, string(fields[3]))
		if err != nil {
			return nil, fmt.Errorf("parse committer date: %w", err)
		}

		records = append(records, gitLogRecord{
			sha:         string(fields[0]),
			authorName:  string(fields[1]),
			authorEmail: string(fields[2]),
			committed:   when,
			message:     string(fields[4]),
			paths:       splitNameOnly(fields[5]),
		})
	}

	return records, nil
}

// splitNameOnly extracts the file names printed by --name-only after the
// formatted header. With -z they are NUL separated; a newline precedes them.
func splitNameOnly(b []byte) []string {
	var paths []string
	for _, field := range bytes.FieldsFunc(b, func(r rune) bool { return r == 0 || r == '\n' }) {
		if p := strings.TrimSpace(string(field)); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
