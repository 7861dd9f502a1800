package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/git"
	"github.com/masmgr/changelog-go/internal/output"
)

// CommandContext holds common state for command execution.
// Building it validates the output format before any repository work starts.
type CommandContext struct {
	Config   *config.Config
	Renderer output.Renderer
	Reader   git.RepositoryReader

	progress *cloneProgress
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, builds the renderer, then opens or clones the
// repository and prepares the history reader.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	renderer, err := output.NewRendererByName(cfg.Defaults.Format, cfg.WriterConfig())
	if err != nil {
		return nil, err
	}

	backend, err := git.ParseBackend(cfg.Defaults.Backend)
	if err != nil {
		return nil, err
	}

	progress := newCloneProgress(os.Stderr)
	repo, err := git.OpenOrClone(c.Context, cfg.Defaults.Repo, progress.acquireOptions(cfg.Defaults.CloneDir))
	if err != nil {
		return nil, err
	}

	reader := git.NewHistoryReader(repo, git.ReadOptions{
		Backend:    backend,
		Include:    cfg.Filters.Include,
		Exclude:    cfg.Filters.Exclude,
		OnProgress: progress.collected,
	})

	return &CommandContext{
		Config:   cfg,
		Renderer: renderer,
		Reader:   reader,
		progress: progress,
	}, nil
}

// Close stops any progress display left running by the reader.
func (ctx *CommandContext) Close() {
	if ctx.progress != nil {
		ctx.progress.stop()
	}
}

// Request returns the generate request described by the configuration.
func (ctx *CommandContext) Request() GenerateRequest {
	return GenerateRequest{
		From:       ctx.Config.Defaults.From,
		To:         ctx.Config.Defaults.To,
		OutputPath: ctx.Config.Defaults.Output,
		Renderer:   ctx.Renderer,
	}
}
