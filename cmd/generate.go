package cmd

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/internal/git"
	"github.com/masmgr/changelog-go/internal/output"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Write a changelog for a revision range",
		ArgsUsage: "[repo]",
		Flags:     generateFlags(),
		Action:    generateAction,
	}
}

// GenerateRequest describes one changelog run.
type GenerateRequest struct {
	From       string
	To         string
	OutputPath string
	Renderer   output.Renderer
}

// GenerateResult summarises a completed run.
type GenerateResult struct {
	Commits    int
	OutputPath string
}

func generateAction(c *cli.Context) error {
	setupVerbose(c)

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	result, err := Generate(c.Context, ctx.Reader, ctx.Request())
	ctx.Close()
	if err != nil {
		return err
	}

	reportResult(os.Stderr, result)
	return nil
}

// Generate collects the commits of the requested range and writes them with
// the request's renderer.
func Generate(ctx context.Context, reader git.RepositoryReader, req GenerateRequest) (GenerateResult, error) {
	commits, err := reader.Collect(ctx, req.From, req.To)
	if err != nil {
		return GenerateResult{}, err
	}

	if err := output.WriteFile(req.Renderer, req.OutputPath, commits); err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{Commits: len(commits), OutputPath: req.OutputPath}, nil
}

func reportResult(w io.Writer, result GenerateResult) {
	if result.Commits == 0 {
		color.New(color.FgYellow).Fprintln(w, "No commits found in the specified range.")
	}
	if result.OutputPath == "" || result.OutputPath == output.StdoutPath {
		return
	}
	color.New(color.FgGreen).Fprintf(w, "Changelog written to %s (%d commits)\n", result.OutputPath, result.Commits)
}

