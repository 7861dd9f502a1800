package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/clierr"
	"github.com/masmgr/changelog-go/internal/git"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "changelog",
		Usage:   "Generate a changelog from conventional commit messages",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
			TypesCmd(),
			FormatsCmd(),
		},
		Flags:  generateFlags(),
		Action: generateAction,
	}
}

// configFlag is shared by every command that reads configuration.
func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file (YAML or JSON)",
	}
}

func breakingSectionFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "breaking-section",
		Usage: "Append a markdown section listing breaking changes",
	}
}

// generateFlags lists the flags of the generate command. Defaults come from
// configuration, so flags only override values that were set explicitly.
func generateFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   "Exclusive start revision (\"root\" for the first commit)",
		},
		&cli.StringFlag{
			Name:    "to",
			Aliases: []string{"t"},
			Usage:   "Inclusive end revision (default: HEAD)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path, \"-\" for stdout (default: CHANGELOG.md)",
		},
		&cli.StringFlag{
			Name:    "output-format",
			Aliases: []string{"format"},
			Usage: "Output format (markdown, json, yaml, csv, ndjson, raw)",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path or URL of the Git repository (default: .)",
		},
		&cli.StringFlag{
			Name:  "clone-dir",
			Usage: "Directory a remote repository is cloned into (default: repo)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (gogit, gitcli)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "Commit types to leave out of the output (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "raw-labels",
			Usage: "Show raw commit types instead of display labels",
		},
		&cli.BoolFlag{
			Name:  "group-by-scope",
			Usage: "Group markdown entries by scope within each type",
		},
		breakingSectionFlag(),
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print debug information",
		},
	}
}

// loadConfig loads configuration and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"from", &cfg.Defaults.From},
		{"to", &cfg.Defaults.To},
		{"output", &cfg.Defaults.Output},
		{"output-format", &cfg.Defaults.Format},
		{"repo", &cfg.Defaults.Repo},
		{"clone-dir", &cfg.Defaults.CloneDir},
		{"backend", &cfg.Defaults.Backend},
	}
	for _, o := range overrides {
		if c.IsSet(o.flag) {
			*o.target = c.String(o.flag)
		}
	}
	if c.NArg() > 0 && !c.IsSet("repo") {
		cfg.Defaults.Repo = c.Args().First()
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if ignored := c.StringSlice("ignore"); len(ignored) > 0 {
		cfg.Writer.IgnoredTypes = append(cfg.Writer.IgnoredTypes, ignored...)
	}
	if c.Bool("raw-labels") {
		cfg.Writer.TypeDisplayNames = map[string]string{}
	}
	if c.IsSet("group-by-scope") {
		cfg.Writer.GroupByScope = c.Bool("group-by-scope")
	}
	if c.IsSet("breaking-section") {
		cfg.Writer.BreakingSection = c.Bool("breaking-section")
	}

	// Validated only now, so a flag can replace a bad configured value.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	debugf("config: %s", cfg)
	return cfg, nil
}

// debugf prints command-level debug output. setupVerbose replaces it.
var debugf = func(string, ...any) {}

// setupVerbose routes debug output to stderr when --verbose is set.
func setupVerbose(c *cli.Context) {
	if !c.Bool("verbose") {
		debugf = func(string, ...any) {}
		git.SetDebugLogger(nil)
		return
	}
	debug := color.New(color.FgCyan)
	debugf = func(format string, args ...any) {
		debug.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
	git.SetDebugLogger(debugf)
}

// printError writes a categorised error to w.
func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "%s: %v\n", clierr.KindOf(err), err)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if clierr.Is(err, clierr.KindConfiguration) {
		return 2
	}
	return 1
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
