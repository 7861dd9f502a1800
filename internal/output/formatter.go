package output

import (
	"io"
	"strings"

	"github.com/masmgr/changelog-go/internal/clierr"
	"github.com/masmgr/changelog-go/internal/commitlog"
)

// Compile-time interface conformance checks.
var (
	_ Renderer = (*MarkdownRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
	_ Renderer = (*YAMLRenderer)(nil)
	_ Renderer = (*CSVRenderer)(nil)
	_ Renderer = (*NDJSONRenderer)(nil)
	_ Renderer = (*RawRenderer)(nil)
)

// Format represents the output format type.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatNDJSON   Format = "ndjson"
	FormatRaw      Format = "raw"
)

// Formats lists the supported formats in presentation order.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatJSON, FormatYAML, FormatCSV, FormatNDJSON, FormatRaw}
}

// ParseFormat parses a format name or alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	case "raw":
		return FormatRaw, nil
	default:
		return "", clierr.Configuration(nil, "unsupported output format %q (expected one of %s)", s, formatList())
	}
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Renderer serializes commits into one textual artifact.
type Renderer interface {
	Render(w io.Writer, commits []commitlog.CommitInfo) error
}

// NewRenderer creates a renderer for the specified format. The config is
// copied, so the renderer is unaffected by later changes to cfg.
func NewRenderer(format Format, cfg WriterConfig) (Renderer, error) {
	cfg = cfg.Clone()
	switch format {
	case FormatMarkdown:
		return &MarkdownRenderer{config: cfg}, nil
	case FormatJSON:
		return &JSONRenderer{config: cfg}, nil
	case FormatYAML:
		return &YAMLRenderer{config: cfg}, nil
	case FormatCSV:
		return &CSVRenderer{config: cfg}, nil
	case FormatNDJSON:
		return &NDJSONRenderer{config: cfg}, nil
	case FormatRaw:
		return &RawRenderer{config: cfg}, nil
	default:
		return nil, clierr.Configuration(nil, "unsupported output format %q (expected one of %s)", format, formatList())
	}
}

// NewRendererByName parses name and creates the matching renderer.
func NewRendererByName(name string, cfg WriterConfig) (Renderer, error) {
	format, err := ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return NewRenderer(format, cfg)
}
