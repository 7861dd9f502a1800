package output

import (
	"bytes"
	"io"
	"os"

	"github.com/masmgr/changelog-go/internal/clierr"
	"github.com/masmgr/changelog-go/internal/commitlog"
)

// StdoutPath is the output path that selects standard output.
const StdoutPath = "-"

// Record is the flat, nine-field view of a commit shared by the structured
// formats. Type holds the display label, Committer the author's email.
type Record struct {
	Type        string `json:"type" yaml:"type"`
	Scope       string `json:"scope" yaml:"scope"`
	Title       string `json:"title" yaml:"title"`
	Message     string `json:"message" yaml:"message"`
	Author      string `json:"author" yaml:"author"`
	Committer   string `json:"committer" yaml:"committer"`
	CommitTime  string `json:"commit_time" yaml:"commit_time"`
	Hash        string `json:"hash" yaml:"hash"`
	BreakChange bool   `json:"break_change" yaml:"break_change"`
}

// recordHeader lists the record field names in output order.
var recordHeader = []string{"type", "scope", "title", "message", "author", "committer", "commit_time", "hash", "break_change"}

// filterCommits drops commits whose raw type is ignored. The result is never nil.
func filterCommits(commits []commitlog.CommitInfo, cfg WriterConfig) []commitlog.CommitInfo {
	kept := make([]commitlog.CommitInfo, 0, len(commits))
	for _, c := range commits {
		if cfg.IsIgnored(c.Type) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// toRecords filters commits and substitutes display labels.
func toRecords(commits []commitlog.CommitInfo, cfg WriterConfig) []Record {
	kept := filterCommits(commits, cfg)
	records := make([]Record, 0, len(kept))
	for _, c := range kept {
		records = append(records, Record{
			Type:        cfg.DisplayName(c.Type),
			Scope:       c.Scope,
			Title:       c.Title,
			Message:     c.Body,
			Author:      c.AuthorName,
			Committer:   c.AuthorEmail,
			CommitTime:  c.CommittedTime,
			Hash:        c.Hash,
			BreakChange: c.Breaking,
		})
	}
	return records
}

// RenderString renders commits into a string.
func RenderString(r Renderer, commits []commitlog.CommitInfo) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, commits); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile renders commits and writes them to path, replacing any existing
// file. An empty path or "-" writes to stdout.
func WriteFile(r Renderer, path string, commits []commitlog.CommitInfo) error {
	// Render first so a failing renderer never truncates an existing file.
	content, err := RenderString(r, commits)
	if err != nil {
		return err
	}

	out, file, err := openOutputWriter(path)
	if err != nil {
		return clierr.IO(err, "failed to create output file %s", path)
	}
	if _, err := io.WriteString(out, content); err != nil {
		if file != nil {
			file.Close()
		}
		return clierr.IO(err, "failed to write output to %s", displayPath(path))
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return clierr.IO(err, "failed to close output file %s", path)
		}
	}
	return nil
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" || outputPath == StdoutPath {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func displayPath(path string) string {
	if path == "" || path == StdoutPath {
		return "stdout"
	}
	return path
}
