package output

import "slices"

// WriterConfig controls how commits are presented. It is a value: renderers
// copy it on construction, so later changes by the caller do not leak in.
type WriterConfig struct {
	// TypeDisplayNames maps a raw type token to its display label.
	// Types without an entry are shown verbatim.
	TypeDisplayNames map[string]string
	// GroupByScope adds scope sub-headings inside each type group of the
	// markdown document. Structured formats ignore it.
	GroupByScope bool
	// IgnoredTypes are removed from every rendered format.
	IgnoredTypes []string
	// BreakingSection appends a markdown section listing breaking changes
	// after the type groups. Off by default.
	BreakingSection bool
	// BreakingChangeLabel heads the breaking changes section.
	BreakingChangeLabel string
}

// DefaultBreakingChangeLabel is the heading used for breaking changes.
const DefaultBreakingChangeLabel = "Breaking Changes"

// DefaultWriterConfig returns the conventional-commit labels.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		TypeDisplayNames: map[string]string{
			"feat":     "Features",
			"fix":      "Bug Fixes",
			"refactor": "Refactors",
			"perf":     "Performance Improvements",
			"docs":     "Documentation",
			"style":    "Styles",
			"test":     "Tests",
			"chore":    "Chores",
			"revert":   "Reverts",
		},
		IgnoredTypes:        []string{},
		BreakingChangeLabel: DefaultBreakingChangeLabel,
	}
}

// RawWriterConfig returns a config that shows raw type tokens.
func RawWriterConfig() WriterConfig {
	return WriterConfig{
		TypeDisplayNames:    map[string]string{},
		IgnoredTypes:        []string{},
		BreakingChangeLabel: DefaultBreakingChangeLabel,
	}
}

// Clone returns a deep copy of c.
func (c WriterConfig) Clone() WriterConfig {
	names := make(map[string]string, len(c.TypeDisplayNames))
	for k, v := range c.TypeDisplayNames {
		names[k] = v
	}
	c.TypeDisplayNames = names
	c.IgnoredTypes = slices.Clone(c.IgnoredTypes)
	return c
}

// DisplayName returns the label for a raw type token.
func (c WriterConfig) DisplayName(typ string) string {
	if name, ok := c.TypeDisplayNames[typ]; ok {
		return name
	}
	return typ
}

// IsIgnored reports whether commits of the given type are dropped.
func (c WriterConfig) IsIgnored(typ string) bool {
	return slices.Contains(c.IgnoredTypes, typ)
}
