package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// JSONRenderer writes commits as an indented JSON array of records.
type JSONRenderer struct {
	config WriterConfig
}

// Render writes the JSON array. Non-ASCII text is written as-is.
func (r *JSONRenderer) Render(w io.Writer, commits []commitlog.CommitInfo) error {
	return writeJSON(w, toRecords(commits, r.config))
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
