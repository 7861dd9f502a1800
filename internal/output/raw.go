package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// RawRenderer dumps every field of each record on its own line. The shape is
// meant for debugging and carries no stability guarantee.
type RawRenderer struct {
	config WriterConfig
}

// Render writes one line per record, lines separated by newlines.
func (r *RawRenderer) Render(w io.Writer, commits []commitlog.CommitInfo) error {
	records := toRecords(commits, r.config)
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, rawRecord(rec))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// rawRecord quotes string fields so embedded newlines stay on one line.
func rawRecord(rec Record) string {
	return fmt.Sprintf(
		"{type:%q scope:%q title:%q message:%q author:%q committer:%q commit_time:%q hash:%q break_change:%t}",
		rec.Type, rec.Scope, rec.Title, rec.Message, rec.Author, rec.Committer, rec.CommitTime, rec.Hash, rec.BreakChange,
	)
}
