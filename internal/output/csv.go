package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// CSVRenderer writes a header row followed by one row per commit.
type CSVRenderer struct {
	config WriterConfig
}

// Render writes the CSV table.
func (r *CSVRenderer) Render(w io.Writer, commits []commitlog.CommitInfo) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range toRecords(commits, r.config) {
		row := []string{
			rec.Type,
			rec.Scope,
			rec.Title,
			rec.Message,
			rec.Author,
			rec.Committer,
			rec.CommitTime,
			rec.Hash,
			strconv.FormatBool(rec.BreakChange),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
