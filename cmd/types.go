package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/internal/output"
)

// TypesCmd returns the types command.
func TypesCmd() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "Show the commit type labels in effect",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "raw-labels",
				Usage: "Show raw commit types instead of display labels",
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "Commit types to leave out of the output (can be specified multiple times)",
			},
			breakingSectionFlag(),
		},
		Action: typesAction,
	}
}

func typesAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	writeTypeTable(c.App.Writer, cfg.WriterConfig())
	return nil
}

func writeTypeTable(w io.Writer, wc output.WriterConfig) {
	types := make([]string, 0, len(wc.TypeDisplayNames)+len(wc.IgnoredTypes))
	seen := make(map[string]bool)
	for typ := range wc.TypeDisplayNames {
		types = append(types, typ)
		seen[typ] = true
	}
	for _, typ := range wc.IgnoredTypes {
		if !seen[typ] {
			types = append(types, typ)
			seen[typ] = true
		}
	}
	sort.Strings(types)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLABEL\tSTATUS")
	for _, typ := range types {
		status := "shown"
		if wc.IsIgnored(typ) {
			status = "ignored"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", typ, wc.DisplayName(typ), status)
	}
	tw.Flush()

	if wc.BreakingSection && wc.BreakingChangeLabel != "" {
		fmt.Fprintf(w, "\nBreaking changes are listed under %q.\n", wc.BreakingChangeLabel)
	}
}

// FormatsCmd returns the formats command.
func FormatsCmd() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "List the supported output formats",
		Action: func(c *cli.Context) error {
			for _, f := range output.Formats() {
				fmt.Fprintln(c.App.Writer, f)
			}
			return nil
		},
	}
}
