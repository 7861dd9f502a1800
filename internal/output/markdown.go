package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// MarkdownRenderer writes a changelog document grouped by commit type.
type MarkdownRenderer struct {
	config WriterConfig
}

type commitGroup struct {
	key     string
	commits []commitlog.CommitInfo
}

// Render writes the document. Groups appear in the order their type is first
// seen in commits, and commits keep their input order within a group.
func (r *MarkdownRenderer) Render(w io.Writer, commits []commitlog.CommitInfo) error {
	kept := filterCommits(commits, r.config)

	sections := make([]string, 0)
	for _, g := range groupBy(kept, func(c commitlog.CommitInfo) string { return c.Type }) {
		var sb strings.Builder
		fmt.Fprintf(&sb, "### %s\n", r.config.DisplayName(g.key))
		if r.config.GroupByScope {
			writeScopedItems(&sb, g.commits)
		} else {
			writeItems(&sb, g.commits, true)
		}
		sections = append(sections, sb.String())
	}

	if label := r.config.BreakingChangeLabel; r.config.BreakingSection && label != "" {
		var breaking []commitlog.CommitInfo
		for _, c := range kept {
			if c.Breaking {
				breaking = append(breaking, c)
			}
		}
		if len(breaking) > 0 {
			var sb strings.Builder
			fmt.Fprintf(&sb, "### %s\n", label)
			writeItems(&sb, breaking, true)
			sections = append(sections, sb.String())
		}
	}

	_, err := io.WriteString(w, "## Changelog\n"+strings.Join(sections, "\n"))
	return err
}

// writeScopedItems lists unscoped commits first, then one sub-heading per scope.
func writeScopedItems(sb *strings.Builder, commits []commitlog.CommitInfo) {
	var unscoped, scoped []commitlog.CommitInfo
	for _, c := range commits {
		if c.Scope == "" {
			unscoped = append(unscoped, c)
		} else {
			scoped = append(scoped, c)
		}
	}
	writeItems(sb, unscoped, true)
	for _, g := range groupBy(scoped, func(c commitlog.CommitInfo) string { return c.Scope }) {
		fmt.Fprintf(sb, "#### %s\n", g.key)
		writeItems(sb, g.commits, false)
	}
}

func writeItems(sb *strings.Builder, commits []commitlog.CommitInfo, withScope bool) {
	for _, c := range commits {
		sb.WriteString("- ")
		if withScope && c.Scope != "" {
			sb.WriteString(c.Scope + ": ")
		}
		fmt.Fprintf(sb, "%s by %s\n", c.Title, c.AuthorName)
	}
}

func groupBy(commits []commitlog.CommitInfo, key func(commitlog.CommitInfo) string) []commitGroup {
	var groups []commitGroup
	index := make(map[string]int)
	for _, c := range commits {
		k := key(c)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, commitGroup{key: k})
		}
		groups[i].commits = append(groups[i].commits, c)
	}
	return groups
}
