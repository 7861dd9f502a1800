package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// NDJSONRenderer writes one compact JSON record per line for pipelines.
type NDJSONRenderer struct {
	config WriterConfig
}

// Render writes the records. An empty input yields no output.
func (r *NDJSONRenderer) Render(w io.Writer, commits []commitlog.CommitInfo) error {
	for _, rec := range toRecords(commits, r.config) {
		if err := writeNDJSONLine(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
