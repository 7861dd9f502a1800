package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// YAMLRenderer writes commits as a YAML sequence of records.
type YAMLRenderer struct {
	config WriterConfig
}

// Render writes the YAML document. An empty input yields "[]".
func (r *YAMLRenderer) Render(w io.Writer, commits []commitlog.CommitInfo) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecords(commits, r.config)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
